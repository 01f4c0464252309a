package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// --- Job requests ---

type CreateJobRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Description  string `json:"description" validate:"required,max=5000"`
	Company      string `json:"company" validate:"omitempty,max=200"`
	Location     string `json:"location" validate:"omitempty,max=200"`
	Requirements string `json:"requirements" validate:"omitempty,max=5000"`
}

// --- Job responses ---

// PostedByUser is the denormalized poster snapshot attached to listings.
type PostedByUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"`
}

// JobResponse is a job enriched with its poster snapshot. PostedByUser
// is null when the poster no longer resolves.
type JobResponse struct {
	models.Job
	PostedByUser *PostedByUser `json:"postedByUser"`
}

// ApplicantResponse is one row of the applicants listing.
type ApplicantResponse struct {
	InterestID string        `json:"interestId"`
	AppliedAt  time.Time     `json:"appliedAt"`
	User       *UserResponse `json:"user"`
}

// InterestResponse wraps the interest record returned when an employee
// expresses interest.
type InterestResponse struct {
	Message  string           `json:"message"`
	Interest *models.Interest `json:"interest"`
}
