package models

import (
	"time"

	"gorm.io/datatypes"
)

// Message is a chat message inside a contract.
type Message struct {
	BaseModel
	ContractID  string         `gorm:"type:uuid;not null;index" json:"contract_id"`
	SenderID    string         `gorm:"type:uuid;not null;index" json:"sender_id"`
	Body        string         `gorm:"type:text;not null" json:"message"`
	Attachments datatypes.JSON `gorm:"type:jsonb" json:"attachments"`
	IsRead      bool           `gorm:"default:false" json:"is_read"`
	ReadAt      *time.Time     `json:"read_at,omitempty"`

	// Relations
	Sender *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}
