package services

import (
	"context"
	"errors"
	"fmt"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"
)

type MeetingService interface {
	ScheduleMeeting(ctx context.Context, userID string, req dto.CreateMeetingRequest) (*models.Meeting, error)
	GetMeeting(userID, meetingID string) (*models.Meeting, error)
	ListContractMeetings(userID, contractID string) ([]models.Meeting, error)
	UpdateMeeting(ctx context.Context, userID, meetingID string, req dto.UpdateMeetingRequest) (*models.Meeting, error)
}

type meetingService struct {
	meetings      repositories.MeetingRepository
	contracts     repositories.ContractRepository
	notifications NotificationService
}

func NewMeetingService(
	meetings repositories.MeetingRepository,
	contracts repositories.ContractRepository,
	notifications NotificationService,
) MeetingService {
	return &meetingService{
		meetings:      meetings,
		contracts:     contracts,
		notifications: notifications,
	}
}

// ScheduleMeeting creates the meeting and notifies the other contract
// party.
func (s *meetingService) ScheduleMeeting(ctx context.Context, userID string, req dto.CreateMeetingRequest) (*models.Meeting, error) {
	contract, err := s.participantContract(userID, req.ContractID)
	if err != nil {
		return nil, err
	}

	meeting := &models.Meeting{
		ContractID:  contract.ID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		MeetingType: models.MeetingType(req.MeetingType),
		MeetingLink: req.MeetingLink,
		Status:      models.MeetingStatusScheduled,
	}
	if err := s.meetings.Create(meeting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notify(ctx, dto.CreateNotificationInput{
		UserID:  contract.OtherParty(userID),
		Type:    models.NotificationTypeMeetingScheduled,
		Title:   "Meeting Scheduled: " + meeting.Title,
		Message: fmt.Sprintf("A meeting was scheduled for %s.", meeting.StartTime.Format("Jan 2, 2006 15:04 MST")),
		Related: models.RelatedRef{ID: meeting.ID, Type: models.RelatedTypeMeeting},
	})

	return meeting, nil
}

func (s *meetingService) GetMeeting(userID, meetingID string) (*models.Meeting, error) {
	meeting, err := s.meetings.FindByID(meetingID)
	if err != nil {
		if errors.Is(err, repositories.ErrMeetingNotFound) {
			return nil, apperrors.NewNotFoundError("meeting", "Meeting not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.participantContract(userID, meeting.ContractID); err != nil {
		return nil, err
	}
	return meeting, nil
}

func (s *meetingService) ListContractMeetings(userID, contractID string) ([]models.Meeting, error) {
	if _, err := s.participantContract(userID, contractID); err != nil {
		return nil, err
	}
	meetings, err := s.meetings.FindByContract(contractID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return meetings, nil
}

func (s *meetingService) UpdateMeeting(ctx context.Context, userID, meetingID string, req dto.UpdateMeetingRequest) (*models.Meeting, error) {
	meeting, err := s.GetMeeting(userID, meetingID)
	if err != nil {
		return nil, err
	}

	rescheduled := false
	if req.Title != nil {
		meeting.Title = *req.Title
	}
	if req.Description != nil {
		meeting.Description = *req.Description
	}
	if req.StartTime != nil {
		meeting.StartTime = *req.StartTime
		meeting.ReminderSent = false
		rescheduled = true
	}
	if req.EndTime != nil {
		meeting.EndTime = *req.EndTime
	}
	if req.MeetingLink != nil {
		meeting.MeetingLink = *req.MeetingLink
	}
	if req.Status != nil {
		meeting.Status = models.MeetingStatus(*req.Status)
	}
	if req.Notes != nil {
		meeting.Notes = *req.Notes
	}

	if err := s.meetings.Update(meeting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if rescheduled {
		contract, cerr := s.contracts.FindByID(meeting.ContractID)
		if cerr == nil {
			s.notify(ctx, dto.CreateNotificationInput{
				UserID:  contract.OtherParty(userID),
				Type:    models.NotificationTypeMeetingScheduled,
				Title:   "Meeting Rescheduled: " + meeting.Title,
				Message: fmt.Sprintf("The meeting was moved to %s.", meeting.StartTime.Format("Jan 2, 2006 15:04 MST")),
				Related: models.RelatedRef{ID: meeting.ID, Type: models.RelatedTypeMeeting},
			})
		}
	}

	return meeting, nil
}

func (s *meetingService) participantContract(userID, contractID string) (*models.Contract, error) {
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

func (s *meetingService) notify(ctx context.Context, input dto.CreateNotificationInput) {
	if _, err := s.notifications.CreateNotification(ctx, input); err != nil {
		logger.WithError(err).Warn("meeting notification failed",
			"user_id", input.UserID, "type", input.Type)
	}
}
