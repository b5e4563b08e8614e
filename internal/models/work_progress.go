package models

import (
	"time"

	"gorm.io/datatypes"
)

type WorkProgress struct {
	BaseModel
	ContractID         string             `gorm:"type:uuid;not null;index" json:"contract_id"`
	Description        string             `gorm:"type:text;not null" json:"description"`
	Percentage         int                `gorm:"not null" json:"percentage"`
	HoursWorked        int                `gorm:"not null;default:0" json:"hours_worked"`
	Date               time.Time          `gorm:"not null" json:"date"`
	Attachments        datatypes.JSON     `gorm:"type:jsonb" json:"attachments"`
	Status             WorkProgressStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ClientFeedback     string             `gorm:"type:text" json:"client_feedback,omitempty"`
	ClientFeedbackDate *time.Time         `json:"client_feedback_date,omitempty"`

	// Relations
	Contract *Contract `gorm:"foreignKey:ContractID" json:"-"`
}
