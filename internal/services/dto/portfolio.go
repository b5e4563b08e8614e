package dto

import "time"

type PortfolioItemRequest struct {
	Title       string     `json:"title" validate:"required,min=3"`
	Description string     `json:"description" validate:"required,min=10"`
	ProjectURL  string     `json:"project_url" validate:"omitempty,url"`
	ImageURL    string     `json:"image_url" validate:"omitempty,url"`
	Skills      []string   `json:"skills" validate:"required,min=1,dive,min=1"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
	IsOngoing   bool       `json:"is_ongoing"`
}
