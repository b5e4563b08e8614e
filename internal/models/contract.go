package models

import (
	"time"

	"gorm.io/datatypes"
)

type Contract struct {
	BaseModel
	ApplicationID    string         `gorm:"type:uuid;not null" json:"application_id"`
	ClientID         string         `gorm:"type:uuid;not null;index" json:"client_id"`
	FreelancerID     string         `gorm:"type:uuid;not null;index" json:"freelancer_id"`
	Terms            string         `gorm:"type:text;not null" json:"terms"`
	StartDate        time.Time      `gorm:"not null" json:"start_date"`
	EndDate          time.Time      `gorm:"not null" json:"end_date"`
	PaymentSchedule  string         `gorm:"not null" json:"payment_schedule"`
	Status           ContractStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	TotalAmount      float64        `gorm:"not null" json:"total_amount"`
	MilestoneAmounts datatypes.JSON `gorm:"type:jsonb" json:"milestone_amounts"`
	CurrentMilestone int            `gorm:"default:0" json:"current_milestone"`
	WorkProgress     int            `gorm:"default:0" json:"work_progress"`
	HoursWorked      int            `gorm:"default:0" json:"hours_worked"`
	LastWorkUpdate   *time.Time     `json:"last_work_update,omitempty"`

	// Relations
	Application *Application   `gorm:"foreignKey:ApplicationID" json:"application,omitempty"`
	Client      *User          `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Freelancer  *User          `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
	Meetings    []Meeting      `gorm:"foreignKey:ContractID" json:"-"`
	Progress    []WorkProgress `gorm:"foreignKey:ContractID" json:"-"`
	Messages    []Message      `gorm:"foreignKey:ContractID" json:"-"`
}

// OtherParty returns the contract participant that is not userID.
// Used when notifying the counterparty about contract events.
func (c *Contract) OtherParty(userID string) string {
	if c.ClientID == userID {
		return c.FreelancerID
	}
	return c.ClientID
}

// IsParticipant reports whether userID is a party to the contract.
func (c *Contract) IsParticipant(userID string) bool {
	return c.ClientID == userID || c.FreelancerID == userID
}
