package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Interest records an employee's intent to apply to a job. One record
// per (JobID, UserID) pair; never updated or deleted.
type Interest struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	JobID     string    `json:"jobId" gorm:"not null;index;uniqueIndex:idx_interest_job_user"`
	UserID    string    `json:"userId" gorm:"not null;uniqueIndex:idx_interest_job_user"`
	CreatedAt time.Time `json:"createdAt"`
}

func (i *Interest) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
