package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"freelancehub_backend/internal/algorithms"
	"freelancehub_backend/internal/config"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/push"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
)

// EmailSender is the slice of the email service the engine needs.
type EmailSender interface {
	SendNotification(ctx context.Context, to, recipientName string, n *models.Notification) error
}

// NotificationService is the delivery engine. Every domain event funnels
// through it: the in-app row is always persisted as the record of truth,
// then push and email are attempted according to the recipient's
// preferences. Channel failures are logged and never propagate to the
// action that triggered the notification.
type NotificationService interface {
	NotifyMatchingFreelancers(ctx context.Context, job *models.Job) (int, error)
	CreateNotification(ctx context.Context, input dto.CreateNotificationInput) (*models.Notification, error)
	GetUserNotifications(userID string, page, limit int) (*dto.NotificationPage, error)
	GetNotificationPreferences(userID string) (*models.NotificationPreference, error)
	UpdateNotificationPreferences(userID string, patch dto.UpdatePreferencesRequest) (*models.NotificationPreference, error)
	MarkAsRead(userID string, notificationIDs []string) error
	MarkAllAsRead(userID string) error
	DeleteNotification(userID, notificationID string) error
	GetUnreadCount(userID string) (int64, error)
}

type notificationService struct {
	notifications repositories.NotificationRepository
	preferences   repositories.PreferenceRepository
	users         repositories.UserRepository
	email         EmailSender
	push          push.Publisher

	fanoutWorkers int
	emailTimeout  time.Duration
}

func NewNotificationService(
	notifications repositories.NotificationRepository,
	preferences repositories.PreferenceRepository,
	users repositories.UserRepository,
	emailSender EmailSender,
	publisher push.Publisher,
	cfg config.NotificationsConfig,
) NotificationService {
	workers := cfg.FanoutWorkers
	if workers <= 0 {
		workers = 8
	}
	timeout := time.Duration(cfg.EmailTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &notificationService{
		notifications: notifications,
		preferences:   preferences,
		users:         users,
		email:         emailSender,
		push:          publisher,
		fanoutWorkers: workers,
		emailTimeout:  timeout,
	}
}

// NotifyMatchingFreelancers fans a job_match notification out to every
// active freelancer whose portfolio skills overlap the job's required
// skills. Recipients are processed concurrently with a bounded worker
// pool; one recipient's failure never aborts the others. The returned
// count is the number of notifications actually persisted.
func (s *notificationService) NotifyMatchingFreelancers(ctx context.Context, job *models.Job) (int, error) {
	required := job.GetSkills()
	if len(required) == 0 {
		return 0, nil
	}

	candidates, err := s.users.FindActiveFreelancers()
	if err != nil {
		return 0, apperrors.InternalError(err)
	}

	matched := algorithms.MatchingFreelancers(required, candidates)
	if len(matched) == 0 {
		return 0, nil
	}

	var created int64
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(s.fanoutWorkers)

	for i := range matched {
		freelancer := matched[i]
		g.Go(func() error {
			n := &models.Notification{
				UserID:  freelancer.ID,
				Type:    models.NotificationTypeJobMatch,
				Title:   "New Job Match: " + job.Title,
				Message: fmt.Sprintf("A new job matching your skills was posted: %q. Budget: $%.2f.", job.Title, job.Budget),
			}
			n.SetRelated(models.RelatedRef{ID: job.ID, Type: models.RelatedTypeJob})

			if err := s.notifications.CreateNotification(n); err != nil {
				logger.WithError(err).Warn("job match notification not persisted",
					"user_id", freelancer.ID, "job_id", job.ID)
				return nil
			}
			atomic.AddInt64(&created, 1)

			s.deliver(ctx, &freelancer, n)
			return nil
		})
	}
	_ = g.Wait()

	logger.Info("job match fan-out finished",
		"job_id", job.ID, "matched", len(matched), "created", created)

	return int(created), nil
}

// CreateNotification persists one notification for a known recipient and
// attempts push and email delivery. The persisted row is returned even
// when a delivery channel fails.
func (s *notificationService) CreateNotification(ctx context.Context, input dto.CreateNotificationInput) (*models.Notification, error) {
	n := &models.Notification{
		UserID:  input.UserID,
		Type:    input.Type,
		Title:   input.Title,
		Message: input.Message,
	}
	n.SetRelated(input.Related)

	if err := s.notifications.CreateNotification(n); err != nil {
		if errors.Is(err, repositories.ErrInvalidNotification) {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		return nil, apperrors.InternalError(err)
	}

	s.deliver(ctx, nil, n)
	return n, nil
}

// deliver runs the push and email channels for a persisted notification.
// recipient may be nil; it is then loaded only if the email channel
// needs it. Channel errors are logged, never returned.
func (s *notificationService) deliver(ctx context.Context, recipient *models.User, n *models.Notification) {
	prefs := s.preferencesFor(n.UserID)
	if !prefs.CategoryEnabled(n.Type) {
		return
	}

	if prefs.PushNotifications {
		s.push.PublishToUser(n.UserID, "notification", n)
	}

	if !prefs.EmailNotifications {
		return
	}

	if recipient == nil {
		user, err := s.users.FindByID(n.UserID)
		if err != nil {
			logger.WithError(err).Warn("notification email skipped, recipient not loaded",
				"user_id", n.UserID, "type", n.Type)
			return
		}
		recipient = user
	}

	emailCtx, cancel := context.WithTimeout(ctx, s.emailTimeout)
	defer cancel()

	if err := s.email.SendNotification(emailCtx, recipient.Email, recipient.FirstName, n); err != nil {
		logger.WithError(err).Warn("notification email failed",
			"user_id", n.UserID, "type", n.Type)
	}
}

// preferencesFor loads the stored preferences or falls back to the
// all-enabled defaults when the user never saved any.
func (s *notificationService) preferencesFor(userID string) *models.NotificationPreference {
	prefs, err := s.preferences.FindByUserID(userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrPreferencesNotFound) {
			logger.WithError(err).Warn("failed to load notification preferences", "user_id", userID)
		}
		return models.DefaultNotificationPreference(userID)
	}
	return prefs
}

func (s *notificationService) GetUserNotifications(userID string, page, limit int) (*dto.NotificationPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	rows, total, err := s.notifications.FindUserNotifications(userID, repositories.NotificationCriteria{
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.NotificationPage{
		Notifications: rows,
		Total:         total,
		Page:          page,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// GetNotificationPreferences returns the user's preference record,
// creating the all-enabled default row on first access.
func (s *notificationService) GetNotificationPreferences(userID string) (*models.NotificationPreference, error) {
	prefs, err := s.preferences.FindByUserID(userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, repositories.ErrPreferencesNotFound) {
		return nil, apperrors.InternalError(err)
	}

	prefs = models.DefaultNotificationPreference(userID)
	if err := s.preferences.Create(prefs); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return prefs, nil
}

// UpdateNotificationPreferences merges the non-nil fields of the patch
// into the stored record, creating it first when absent.
func (s *notificationService) UpdateNotificationPreferences(userID string, patch dto.UpdatePreferencesRequest) (*models.NotificationPreference, error) {
	prefs, err := s.GetNotificationPreferences(userID)
	if err != nil {
		return nil, err
	}

	applyBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	applyBool(&prefs.JobMatches, patch.JobMatches)
	applyBool(&prefs.ApplicationUpdates, patch.ApplicationUpdates)
	applyBool(&prefs.ContractUpdates, patch.ContractUpdates)
	applyBool(&prefs.MeetingReminders, patch.MeetingReminders)
	applyBool(&prefs.WorkProgressUpdates, patch.WorkProgressUpdates)
	applyBool(&prefs.Messages, patch.Messages)
	applyBool(&prefs.EmailNotifications, patch.EmailNotifications)
	applyBool(&prefs.PushNotifications, patch.PushNotifications)
	applyBool(&prefs.InAppNotifications, patch.InAppNotifications)

	if err := s.preferences.Save(prefs); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return prefs, nil
}

func (s *notificationService) MarkAsRead(userID string, notificationIDs []string) error {
	if err := s.notifications.MarkManyAsRead(userID, notificationIDs); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(userID string) error {
	if err := s.notifications.MarkAllAsRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) DeleteNotification(userID, notificationID string) error {
	err := s.notifications.DeleteNotification(userID, notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.NewNotFoundError("notification", "Notification not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) GetUnreadCount(userID string) (int64, error) {
	count, err := s.notifications.GetUnreadCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
