package dto

import (
	"github.com/google/uuid"
	"github.com/hydrolog/hydrolog-backend/internal/validation"
)

type SignupRequest struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// HomeResponse is the payload for the authenticated home page.
type HomeResponse struct {
	Email string `json:"email"`
}

// PageResponse is the payload for the unauthenticated form pages; the
// frontend owns the actual rendering.
type PageResponse struct {
	Page string `json:"page"`
}

type ErrorResponse struct {
	Error   bool                    `json:"error"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
