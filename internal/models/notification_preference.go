package models

// NotificationPreference holds per-user channel and category flags.
// A user without a row gets every channel and category enabled; the
// record is created lazily on the first preference update.
type NotificationPreference struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	// Category flags
	JobMatches          bool `gorm:"default:true" json:"job_matches"`
	ApplicationUpdates  bool `gorm:"default:true" json:"application_updates"`
	ContractUpdates     bool `gorm:"default:true" json:"contract_updates"`
	MeetingReminders    bool `gorm:"default:true" json:"meeting_reminders"`
	WorkProgressUpdates bool `gorm:"default:true" json:"work_progress_updates"`
	Messages            bool `gorm:"default:true" json:"messages"`

	// Channel flags
	EmailNotifications bool `gorm:"default:true" json:"email_notifications"`
	PushNotifications  bool `gorm:"default:true" json:"push_notifications"`
	InAppNotifications bool `gorm:"default:true" json:"in_app_notifications"`
}

// DefaultNotificationPreference is the all-enabled record used when a
// user has never stored preferences.
func DefaultNotificationPreference(userID string) *NotificationPreference {
	return &NotificationPreference{
		UserID:              userID,
		JobMatches:          true,
		ApplicationUpdates:  true,
		ContractUpdates:     true,
		MeetingReminders:    true,
		WorkProgressUpdates: true,
		Messages:            true,
		EmailNotifications:  true,
		PushNotifications:   true,
		InAppNotifications:  true,
	}
}

// CategoryEnabled reports whether the category covering the given
// notification type is enabled.
func (p *NotificationPreference) CategoryEnabled(t NotificationType) bool {
	switch t {
	case NotificationTypeJobMatch:
		return p.JobMatches
	case NotificationTypeApplicationReceived, NotificationTypeApplicationAccepted, NotificationTypeApplicationRejected:
		return p.ApplicationUpdates
	case NotificationTypeContractCreated, NotificationTypeContractUpdated:
		return p.ContractUpdates
	case NotificationTypeMeetingScheduled:
		return p.MeetingReminders
	case NotificationTypeWorkProgressUpdated:
		return p.WorkProgressUpdates
	case NotificationTypeMessageReceived:
		return p.Messages
	default:
		return true
	}
}
