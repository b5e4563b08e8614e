package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"
)

type WorkProgressService interface {
	SubmitProgress(ctx context.Context, freelancerID string, req dto.CreateWorkProgressRequest) (*models.WorkProgress, error)
	ListContractProgress(userID, contractID string) ([]models.WorkProgress, error)
	ReviewProgress(ctx context.Context, clientID, entryID string, req dto.ReviewWorkProgressRequest) (*models.WorkProgress, error)
}

type workProgressService struct {
	progress      repositories.WorkProgressRepository
	contracts     repositories.ContractRepository
	notifications NotificationService
}

func NewWorkProgressService(
	progress repositories.WorkProgressRepository,
	contracts repositories.ContractRepository,
	notifications NotificationService,
) WorkProgressService {
	return &workProgressService{
		progress:      progress,
		contracts:     contracts,
		notifications: notifications,
	}
}

// SubmitProgress records a progress entry, rolls the totals up onto the
// contract and notifies the client.
func (s *workProgressService) SubmitProgress(ctx context.Context, freelancerID string, req dto.CreateWorkProgressRequest) (*models.WorkProgress, error) {
	contract, err := s.contracts.FindByID(req.ContractID)
	if err != nil {
		if errors.Is(err, repositories.ErrContractNotFound) {
			return nil, apperrors.NewNotFoundError("contract", "Contract not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if contract.FreelancerID != freelancerID {
		return nil, apperrors.NewForbiddenError("Only the contract freelancer can submit progress")
	}
	if contract.Status != models.ContractStatusActive {
		return nil, apperrors.ErrInvalidStatus("work_progress", "Contract is not active")
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	entry := &models.WorkProgress{
		ContractID:  contract.ID,
		Description: req.Description,
		Percentage:  req.Percentage,
		HoursWorked: req.HoursWorked,
		Date:        date,
		Attachments: models.StringsToJSON(req.Attachments),
		Status:      models.WorkProgressStatusPending,
	}
	if err := s.progress.Create(entry); err != nil {
		return nil, apperrors.InternalError(err)
	}

	contract.WorkProgress = req.Percentage
	contract.HoursWorked += req.HoursWorked
	now := time.Now()
	contract.LastWorkUpdate = &now
	if err := s.contracts.Update(contract); err != nil {
		logger.WithError(err).Error("failed to roll progress up onto contract",
			"contract_id", contract.ID, "entry_id", entry.ID)
	}

	s.notify(ctx, dto.CreateNotificationInput{
		UserID:  contract.ClientID,
		Type:    models.NotificationTypeWorkProgressUpdated,
		Title:   "Work Progress Updated",
		Message: fmt.Sprintf("The freelancer reported %d%% completion (%d hours).", req.Percentage, req.HoursWorked),
		Related: models.RelatedRef{ID: entry.ID, Type: models.RelatedTypeWorkProgress},
	})

	return entry, nil
}

func (s *workProgressService) ListContractProgress(userID, contractID string) ([]models.WorkProgress, error) {
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

	entries, err := s.progress.FindByContract(contractID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entries, nil
}

// ReviewProgress lets the client approve or reject a pending entry and
// notifies the freelancer.
func (s *workProgressService) ReviewProgress(ctx context.Context, clientID, entryID string, req dto.ReviewWorkProgressRequest) (*models.WorkProgress, error) {
	entry, err := s.progress.FindByID(entryID)
	if err != nil {
		if errors.Is(err, repositories.ErrWorkProgressNotFound) {
			return nil, apperrors.NewNotFoundError("work_progress", "Progress entry not found")
		}
		return nil, apperrors.InternalError(err)
	}

	contract, err := s.contracts.FindByID(entry.ContractID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if contract.ClientID != clientID {
		return nil, apperrors.NewForbiddenError("Only the contract client can review progress")
	}
	if entry.Status != models.WorkProgressStatusPending {
		return nil, apperrors.ErrInvalidStatus("work_progress", "Progress entry was already reviewed")
	}

	entry.Status = models.WorkProgressStatus(req.Status)
	entry.ClientFeedback = req.ClientFeedback
	now := time.Now()
	entry.ClientFeedbackDate = &now
	if err := s.progress.Update(entry); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notify(ctx, dto.CreateNotificationInput{
		UserID:  contract.FreelancerID,
		Type:    models.NotificationTypeWorkProgressUpdated,
		Title:   fmt.Sprintf("Progress %s", req.Status),
		Message: fmt.Sprintf("Your progress report was %s by the client.", req.Status),
		Related: models.RelatedRef{ID: entry.ID, Type: models.RelatedTypeWorkProgress},
	})

	return entry, nil
}

func (s *workProgressService) notify(ctx context.Context, input dto.CreateNotificationInput) {
	if _, err := s.notifications.CreateNotification(ctx, input); err != nil {
		logger.WithError(err).Warn("work progress notification failed",
			"user_id", input.UserID, "type", input.Type)
	}
}
