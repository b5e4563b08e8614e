package dto

type CreateApplicationRequest struct {
	JobID        string  `json:"job_id" validate:"required,uuid"`
	CoverLetter  string  `json:"cover_letter" validate:"required,min=10"`
	ProposedRate float64 `json:"proposed_rate" validate:"required,gt=0"`
}

type DecideApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}
