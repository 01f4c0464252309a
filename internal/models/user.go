package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Experience is one entry of an employee's work history.
type Experience struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Years    int    `json:"years"`
}

type User struct {
	BaseModel
	Name  string   `json:"name" gorm:"not null"`
	Email string   `json:"email" gorm:"uniqueIndex;not null"`
	Phone string   `json:"phone"`
	Photo string   `json:"photo,omitempty"`
	Role  UserRole `json:"role" gorm:"type:varchar(20);not null"`

	// Employer fields
	CompanyName        string `json:"companyName,omitempty"`
	CompanyLocation    string `json:"companyLocation,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`

	// Employee fields
	Experiences datatypes.JSONSlice[Experience] `json:"experiences,omitempty" gorm:"type:jsonb"`
}

type RefreshToken struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"userId" gorm:"not null;index"`
	Token     string    `json:"token" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
}

func (t *RefreshToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
