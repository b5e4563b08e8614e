package services

import (
	"context"
	"errors"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/push"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"
)

// ChatService is the per-contract message thread between client and
// freelancer.
type ChatService interface {
	SendMessage(ctx context.Context, senderID, contractID string, req dto.SendMessageRequest) (*models.Message, error)
	GetMessages(userID, contractID string, page, limit int) (*dto.MessagePage, error)
	MarkThreadRead(userID, contractID string) error
	UnreadCount(userID, contractID string) (int64, error)
}

type chatService struct {
	messages      repositories.MessageRepository
	contracts     repositories.ContractRepository
	notifications NotificationService
	push          push.Publisher
}

func NewChatService(
	messages repositories.MessageRepository,
	contracts repositories.ContractRepository,
	notifications NotificationService,
	publisher push.Publisher,
) ChatService {
	return &chatService{
		messages:      messages,
		contracts:     contracts,
		notifications: notifications,
		push:          publisher,
	}
}

// SendMessage stores the message, pushes it to the counterparty's open
// connections and raises a message_received notification.
func (s *chatService) SendMessage(ctx context.Context, senderID, contractID string, req dto.SendMessageRequest) (*models.Message, error) {
	contract, err := s.participantContract(senderID, contractID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		ContractID:  contract.ID,
		SenderID:    senderID,
		Body:        req.Body,
		Attachments: models.StringsToJSON(req.Attachments),
	}
	if err := s.messages.Create(message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	recipient := contract.OtherParty(senderID)
	s.push.PublishToUser(recipient, "chat_message", message)

	preview := req.Body
	if len(preview) > 80 {
		preview = preview[:77] + "..."
	}
	if _, err := s.notifications.CreateNotification(ctx, dto.CreateNotificationInput{
		UserID:  recipient,
		Type:    models.NotificationTypeMessageReceived,
		Title:   "New Message",
		Message: preview,
		Related: models.RelatedRef{ID: message.ID, Type: models.RelatedTypeMessage},
	}); err != nil {
		logger.WithError(err).Warn("chat notification failed",
			"user_id", recipient, "contract_id", contract.ID)
	}

	return message, nil
}

func (s *chatService) GetMessages(userID, contractID string, page, limit int) (*dto.MessagePage, error) {
	if _, err := s.participantContract(userID, contractID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	rows, total, err := s.messages.FindByContract(contractID, page, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.MessagePage{
		Messages:   rows,
		Total:      total,
		Page:       page,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s *chatService) MarkThreadRead(userID, contractID string) error {
	if _, err := s.participantContract(userID, contractID); err != nil {
		return err
	}
	if err := s.messages.MarkContractRead(contractID, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *chatService) UnreadCount(userID, contractID string) (int64, error) {
	if _, err := s.participantContract(userID, contractID); err != nil {
		return 0, err
	}
	count, err := s.messages.UnreadCount(contractID, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *chatService) participantContract(userID, contractID string) (*models.Contract, error) {
	contract, err := s.contracts.FindByID(contractID)
	if err != nil {
		if errors.Is(err, repositories.ErrContractNotFound) {
			return nil, apperrors.NewNotFoundError("contract", "Contract not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !contract.IsParticipant(userID) {
		return nil, apperrors.NewForbiddenError("You are not a party to this contract")
	}
	return contract, nil
}
