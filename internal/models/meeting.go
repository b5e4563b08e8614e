package models

import "time"

type Meeting struct {
	BaseModel
	ContractID   string        `gorm:"type:uuid;not null;index" json:"contract_id"`
	Title        string        `gorm:"not null" json:"title"`
	Description  string        `gorm:"type:text" json:"description,omitempty"`
	StartTime    time.Time     `gorm:"not null" json:"start_time"`
	EndTime      time.Time     `gorm:"not null" json:"end_time"`
	MeetingType  MeetingType   `gorm:"type:varchar(20);default:'zoom'" json:"meeting_type"`
	MeetingLink  string        `gorm:"not null" json:"meeting_link"`
	Status       MeetingStatus `gorm:"type:varchar(20);default:'scheduled'" json:"status"`
	Notes        string        `gorm:"type:text" json:"notes,omitempty"`
	ReminderSent bool          `gorm:"default:false" json:"-"`

	// Relations
	Contract *Contract `gorm:"foreignKey:ContractID" json:"-"`
}
