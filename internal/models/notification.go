package models

import "time"

type NotificationType string

const (
	NotificationTypeJobMatch            NotificationType = "job_match"
	NotificationTypeApplicationReceived NotificationType = "application_received"
	NotificationTypeApplicationAccepted NotificationType = "application_accepted"
	NotificationTypeApplicationRejected NotificationType = "application_rejected"
	NotificationTypeContractCreated     NotificationType = "contract_created"
	NotificationTypeContractUpdated     NotificationType = "contract_updated"
	NotificationTypeMeetingScheduled    NotificationType = "meeting_scheduled"
	NotificationTypeWorkProgressUpdated NotificationType = "work_progress_updated"
	NotificationTypeMessageReceived     NotificationType = "message_received"
)

// ValidNotificationTypes is the closed enumeration of notification types.
var ValidNotificationTypes = map[NotificationType]bool{
	NotificationTypeJobMatch:            true,
	NotificationTypeApplicationReceived: true,
	NotificationTypeApplicationAccepted: true,
	NotificationTypeApplicationRejected: true,
	NotificationTypeContractCreated:     true,
	NotificationTypeContractUpdated:     true,
	NotificationTypeMeetingScheduled:    true,
	NotificationTypeWorkProgressUpdated: true,
	NotificationTypeMessageReceived:     true,
}

// RelatedType identifies the kind of entity a notification points at.
// Keeping it a closed set avoids unchecked string discriminators.
type RelatedType string

const (
	RelatedTypeJob          RelatedType = "job"
	RelatedTypeApplication  RelatedType = "application"
	RelatedTypeContract     RelatedType = "contract"
	RelatedTypeMeeting      RelatedType = "meeting"
	RelatedTypeWorkProgress RelatedType = "work_progress"
	RelatedTypeMessage      RelatedType = "message"
)

var validRelatedTypes = map[RelatedType]bool{
	RelatedTypeJob:          true,
	RelatedTypeApplication:  true,
	RelatedTypeContract:     true,
	RelatedTypeMeeting:      true,
	RelatedTypeWorkProgress: true,
	RelatedTypeMessage:      true,
}

// RelatedRef is an optional typed reference to the entity that
// triggered the notification. Zero value means "no reference".
type RelatedRef struct {
	ID   string      `json:"id"`
	Type RelatedType `json:"type"`
}

func (r RelatedRef) IsZero() bool {
	return r.ID == "" && r.Type == ""
}

func (r RelatedRef) Valid() bool {
	if r.IsZero() {
		return true
	}
	return r.ID != "" && validRelatedTypes[r.Type]
}

type Notification struct {
	BaseModel
	UserID      string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        NotificationType `gorm:"type:varchar(40);not null" json:"type"`
	Title       string           `gorm:"not null" json:"title"`
	Message     string           `gorm:"type:text;not null" json:"message"`
	IsRead      bool             `gorm:"default:false" json:"is_read"`
	ReadAt      *time.Time       `json:"read_at,omitempty"`
	RelatedID   *string          `gorm:"type:uuid" json:"related_id,omitempty"`
	RelatedType *RelatedType     `gorm:"type:varchar(20)" json:"related_type,omitempty"`
}

// Related reassembles the typed reference from its columns.
func (n *Notification) Related() RelatedRef {
	if n.RelatedID == nil || n.RelatedType == nil {
		return RelatedRef{}
	}
	return RelatedRef{ID: *n.RelatedID, Type: *n.RelatedType}
}

// SetRelated stores the typed reference as columns.
func (n *Notification) SetRelated(ref RelatedRef) {
	if ref.IsZero() {
		n.RelatedID = nil
		n.RelatedType = nil
		return
	}
	id := ref.ID
	typ := ref.Type
	n.RelatedID = &id
	n.RelatedType = &typ
}
