package models

import (
	"time"

	"gorm.io/datatypes"
)

type PortfolioItem struct {
	BaseModel
	FreelancerID string         `gorm:"type:uuid;not null;index" json:"freelancer_id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	ProjectURL   string         `json:"project_url,omitempty"`
	ImageURL     string         `json:"image_url,omitempty"`
	Skills       datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	StartDate    time.Time      `gorm:"not null" json:"start_date"`
	EndDate      *time.Time     `json:"end_date,omitempty"`
	IsOngoing    bool           `gorm:"default:false" json:"is_ongoing"`
}

func (p *PortfolioItem) GetSkills() []string {
	return JSONToStrings(p.Skills)
}

func (p *PortfolioItem) SetSkills(skills []string) {
	p.Skills = StringsToJSON(skills)
}
