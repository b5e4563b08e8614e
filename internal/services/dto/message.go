package dto

import "freelancehub_backend/internal/models"

type SendMessageRequest struct {
	Body        string   `json:"message" validate:"required,min=1"`
	Attachments []string `json:"attachments"`
}

type MessagePage struct {
	Messages   []models.Message `json:"messages"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}
