package dto

import "time"

type CreateContractRequest struct {
	ApplicationID    string    `json:"application_id" validate:"required,uuid"`
	Terms            string    `json:"terms" validate:"required,min=10"`
	StartDate        time.Time `json:"start_date" validate:"required"`
	EndDate          time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
	PaymentSchedule  string    `json:"payment_schedule" validate:"required"`
	TotalAmount      float64   `json:"total_amount" validate:"required,gt=0"`
	MilestoneAmounts []float64 `json:"milestone_amounts" validate:"omitempty,dive,gt=0"`
}

type UpdateContractRequest struct {
	Terms            *string    `json:"terms" validate:"omitempty,min=10"`
	EndDate          *time.Time `json:"end_date"`
	PaymentSchedule  *string    `json:"payment_schedule"`
	Status           *string    `json:"status" validate:"omitempty,oneof=active completed terminated"`
	CurrentMilestone *int       `json:"current_milestone" validate:"omitempty,gte=0"`
}
