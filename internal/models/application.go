package models

type Application struct {
	BaseModel
	CoverLetter  string            `gorm:"type:text;not null" json:"cover_letter"`
	ProposedRate float64           `gorm:"not null" json:"proposed_rate"`
	Status       ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	FreelancerID string            `gorm:"type:uuid;not null;index" json:"freelancer_id"`
	JobID        string            `gorm:"type:uuid;not null;index" json:"job_id"`

	// Relations
	Freelancer *User `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
	Job        *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
