package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	Title                string          `gorm:"not null" json:"title"`
	Description          string          `gorm:"type:text;not null" json:"description"`
	Budget               float64         `gorm:"not null" json:"budget"`
	Deadline             time.Time       `gorm:"not null" json:"deadline"`
	Skills               datatypes.JSON  `gorm:"type:jsonb" json:"skills"`
	Category             string          `gorm:"not null" json:"category"`
	Status               JobStatus       `gorm:"type:varchar(20);default:'open'" json:"status"`
	ExperienceLevel      ExperienceLevel `gorm:"type:varchar(20);not null" json:"experience_level"`
	EstimatedHours       int             `gorm:"not null" json:"estimated_hours"`
	ClientID             string          `gorm:"type:uuid;not null;index" json:"client_id"`
	SelectedFreelancerID *string         `gorm:"type:uuid" json:"selected_freelancer_id,omitempty"`
	ContractID           *string         `gorm:"type:uuid" json:"contract_id,omitempty"`

	// Relations
	Client       *User         `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}

func (j *Job) GetSkills() []string {
	return JSONToStrings(j.Skills)
}

func (j *Job) SetSkills(skills []string) {
	j.Skills = StringsToJSON(skills)
}
