package dto

import "time"

type CreateWorkProgressRequest struct {
	ContractID  string     `json:"contract_id" validate:"required,uuid"`
	Description string     `json:"description" validate:"required,min=5"`
	Percentage  int        `json:"percentage" validate:"required,gte=0,lte=100"`
	HoursWorked int        `json:"hours_worked" validate:"gte=0"`
	Date        *time.Time `json:"date"`
	Attachments []string   `json:"attachments"`
}

type ReviewWorkProgressRequest struct {
	Status         string `json:"status" validate:"required,oneof=approved rejected"`
	ClientFeedback string `json:"client_feedback"`
}
