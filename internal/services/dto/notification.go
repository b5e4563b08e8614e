package dto

import "freelancehub_backend/internal/models"

// CreateNotificationInput is the engine's direct entry point, used by
// domain services when a single known recipient must be notified.
type CreateNotificationInput struct {
	UserID  string                  `json:"user_id" validate:"required,uuid"`
	Type    models.NotificationType `json:"type" validate:"required"`
	Title   string                  `json:"title" validate:"required"`
	Message string                  `json:"message" validate:"required"`
	Related models.RelatedRef       `json:"related"`
}

type NotificationPage struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	TotalPages    int                   `json:"total_pages"`
}

type MarkReadRequest struct {
	NotificationIDs []string `json:"notification_ids" validate:"required,min=1,dive,uuid"`
}

// UpdatePreferencesRequest is a partial update: nil fields keep their
// stored value.
type UpdatePreferencesRequest struct {
	JobMatches          *bool `json:"job_matches"`
	ApplicationUpdates  *bool `json:"application_updates"`
	ContractUpdates     *bool `json:"contract_updates"`
	MeetingReminders    *bool `json:"meeting_reminders"`
	WorkProgressUpdates *bool `json:"work_progress_updates"`
	Messages            *bool `json:"messages"`
	EmailNotifications  *bool `json:"email_notifications"`
	PushNotifications   *bool `json:"push_notifications"`
	InAppNotifications  *bool `json:"in_app_notifications"`
}
