package dto

import (
	"github.com/hydrolog/hydrolog-backend/internal/models"
)

// Quantity arrives as a string so that a non-numeric value can be rejected
// as its own error rather than a generic body-parse failure.
type AddIntakeRequest struct {
	Quantity string `json:"quantity" form:"quantity"`
}

type EditIntakeRequest struct {
	Quantity string `json:"quantity" form:"quantity"`
}

type DifferenceRequest struct {
	From string `json:"from" form:"from"`
	To   string `json:"to" form:"to"`
}

type IntakeListResponse struct {
	Intakes    []models.Intake `json:"intakes"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
}

type DifferenceResponse struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Difference float64 `json:"difference"`
	Message    string  `json:"message"`
}
