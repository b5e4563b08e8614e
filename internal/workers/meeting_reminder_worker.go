package workers

import (
	"context"
	"fmt"
	"time"

	"freelancehub_backend/internal/config"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"
)

// MeetingReminderWorker periodically scans for meetings starting soon
// and fires a reminder to both contract parties, once per meeting.
type MeetingReminderWorker struct {
	meetings      repositories.MeetingRepository
	contracts     repositories.ContractRepository
	notifications services.NotificationService

	window time.Duration
	tick   time.Duration
}

func NewMeetingReminderWorker(
	meetings repositories.MeetingRepository,
	contracts repositories.ContractRepository,
	notifications services.NotificationService,
	cfg config.NotificationsConfig,
) *MeetingReminderWorker {
	window := time.Duration(cfg.ReminderWindowMin) * time.Minute
	if window <= 0 {
		window = 30 * time.Minute
	}
	tick := time.Duration(cfg.ReminderTickMin) * time.Minute
	if tick <= 0 {
		tick = 5 * time.Minute
	}
	return &MeetingReminderWorker{
		meetings:      meetings,
		contracts:     contracts,
		notifications: notifications,
		window:        window,
		tick:          tick,
	}
}

func (w *MeetingReminderWorker) Run(ctx context.Context) {
	logger.Info("meeting reminder worker started",
		"window", w.window.String(), "tick", w.tick.String())

	ticker := time.NewTicker(w.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("meeting reminder worker stopped")
			return
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

func (w *MeetingReminderWorker) scan(ctx context.Context) {
	due, err := w.meetings.FindDueForReminder(time.Now().Add(w.window))
	if err != nil {
		logger.WithError(err).Error("reminder scan failed")
		return
	}

	for i := range due {
		meeting := &due[i]
		if err := w.remind(ctx, meeting); err != nil {
			logger.WithError(err).Warn("meeting reminder failed", "meeting_id", meeting.ID)
			continue
		}
		if err := w.meetings.MarkReminderSent(meeting.ID); err != nil {
			logger.WithError(err).Warn("failed to mark reminder sent", "meeting_id", meeting.ID)
		}
	}
}

func (w *MeetingReminderWorker) remind(ctx context.Context, meeting *models.Meeting) error {
	contract, err := w.contracts.FindByID(meeting.ContractID)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Reminder: %q starts at %s.",
		meeting.Title, meeting.StartTime.Format("Jan 2, 2006 15:04 MST"))

	for _, userID := range []string{contract.ClientID, contract.FreelancerID} {
		_, err := w.notifications.CreateNotification(ctx, dto.CreateNotificationInput{
			UserID:  userID,
			Type:    models.NotificationTypeMeetingScheduled,
			Title:   "Upcoming Meeting: " + meeting.Title,
			Message: message,
			Related: models.RelatedRef{ID: meeting.ID, Type: models.RelatedTypeMeeting},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
