package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// Repositories bundles every persistence interface so the app can swap
// the backing store as a unit.
type Repositories struct {
	Users         UserRepository
	Jobs          JobRepository
	Interests     InterestRepository
	RefreshTokens RefreshTokenRepository
}

// NewGormRepositories builds the database-backed implementations.
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(db),
		Jobs:          NewJobRepository(db),
		Interests:     NewInterestRepository(db),
		RefreshTokens: NewRefreshTokenRepository(db),
	}
}

// AutoMigrate creates or updates the schema for all domain tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Interest{},
		&models.RefreshToken{},
	)
}
