package dto

import "time"

type CreateMeetingRequest struct {
	ContractID  string    `json:"contract_id" validate:"required,uuid"`
	Title       string    `json:"title" validate:"required,min=3"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	MeetingType string    `json:"meeting_type" validate:"required,oneof=zoom google_meet other"`
	MeetingLink string    `json:"meeting_link" validate:"required,url"`
}

type UpdateMeetingRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=3"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	MeetingLink *string    `json:"meeting_link" validate:"omitempty,url"`
	Status      *string    `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Notes       *string    `json:"notes"`
}
