package dto

import (
	"jobboard_backend/internal/models"
)

// UserResponse is the public profile shape: role-specific fields are
// present only for the matching role.
type UserResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Phone string          `json:"phone"`
	Photo string          `json:"photo,omitempty"`
	Role  models.UserRole `json:"role"`

	CompanyName        string `json:"companyName,omitempty"`
	CompanyLocation    string `json:"companyLocation,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`

	Experiences []models.Experience `json:"experiences,omitempty"`
}

// NewUserResponse projects a user record onto its public profile.
func NewUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Photo: user.Photo,
		Role:  user.Role,
	}

	switch user.Role {
	case models.UserRoleEmployer:
		resp.CompanyName = user.CompanyName
		resp.CompanyLocation = user.CompanyLocation
		resp.CompanyDescription = user.CompanyDescription
	case models.UserRoleEmployee:
		resp.Experiences = []models.Experience(user.Experiences)
		if resp.Experiences == nil {
			resp.Experiences = []models.Experience{}
		}
	}
	return resp
}
