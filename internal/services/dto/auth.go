package dto

import (
	"jobboard_backend/internal/models"
)

// RegisterRequest arrives as multipart form fields; the optional photo
// file and the experiences JSON string are handled by the handler.
type RegisterRequest struct {
	Name  string          `form:"name" json:"name" validate:"required"`
	Email string          `form:"email" json:"email" validate:"required,email"`
	Phone string          `form:"phone" json:"phone" validate:"required"`
	Role  models.UserRole `form:"role" json:"role" validate:"required,is-user-role"`

	// Employer fields
	CompanyName        string `form:"companyName" json:"companyName,omitempty" validate:"required_if=Role employer"`
	CompanyLocation    string `form:"companyLocation" json:"companyLocation,omitempty" validate:"required_if=Role employer"`
	CompanyDescription string `form:"companyDescription" json:"companyDescription,omitempty"`

	// Employee fields, decoded from the "experiences" form value
	Experiences []models.Experience `form:"-" json:"experiences,omitempty"`

	// Set by the handler once the upload is stored
	Photo string `form:"-" json:"-"`
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message      string        `json:"message"`
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
}

// RefreshResponse carries the re-issued access token.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
