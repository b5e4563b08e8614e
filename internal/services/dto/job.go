package dto

import (
	"time"

	"freelancehub_backend/internal/models"
)

type CreateJobRequest struct {
	Title           string    `json:"title" validate:"required,min=3,max=200"`
	Description     string    `json:"description" validate:"required,min=10"`
	Budget          float64   `json:"budget" validate:"required,gt=0"`
	Deadline        time.Time `json:"deadline" validate:"required"`
	Skills          []string  `json:"skills" validate:"required,min=1,dive,min=1"`
	Category        string    `json:"category" validate:"required"`
	ExperienceLevel string    `json:"experience_level" validate:"required,oneof=entry intermediate expert"`
	EstimatedHours  int       `json:"estimated_hours" validate:"required,gt=0"`
}

type UpdateJobRequest struct {
	Title          *string    `json:"title" validate:"omitempty,min=3,max=200"`
	Description    *string    `json:"description" validate:"omitempty,min=10"`
	Budget         *float64   `json:"budget" validate:"omitempty,gt=0"`
	Deadline       *time.Time `json:"deadline"`
	Skills         []string   `json:"skills" validate:"omitempty,min=1,dive,min=1"`
	Category       *string    `json:"category"`
	EstimatedHours *int       `json:"estimated_hours" validate:"omitempty,gt=0"`
	Status         *string    `json:"status" validate:"omitempty,oneof=open in-progress completed cancelled"`
}

type JobListQuery struct {
	Status   string `form:"status" validate:"omitempty,oneof=open in-progress completed cancelled"`
	Category string `form:"category"`
	ClientID string `form:"client_id" validate:"omitempty,uuid"`
	Page     int    `form:"page" validate:"omitempty,gte=1"`
	Limit    int    `form:"limit" validate:"omitempty,gte=1,lte=100"`
}

type JobListResponse struct {
	Jobs       []models.Job `json:"jobs"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
}
