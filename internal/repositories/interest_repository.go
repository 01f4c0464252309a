package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInterestNotFound = errors.New("interest not found")

type InterestRepository interface {
	Create(interest *models.Interest) error
	FindByJobAndUser(jobID, userID string) (*models.Interest, error)
	FindByJob(jobID string) ([]models.Interest, error)
}

type InterestRepositoryImpl struct {
	db *gorm.DB
}

func NewInterestRepository(db *gorm.DB) InterestRepository {
	return &InterestRepositoryImpl{db: db}
}

func (r *InterestRepositoryImpl) Create(interest *models.Interest) error {
	err := r.db.Create(interest).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		// Concurrent duplicate: the unique (job_id, user_id) index won
		// the race, return the existing record.
		existing, findErr := r.FindByJobAndUser(interest.JobID, interest.UserID)
		if findErr != nil {
			return err
		}
		*interest = *existing
		return nil
	}
	return err
}

func (r *InterestRepositoryImpl) FindByJobAndUser(jobID, userID string) (*models.Interest, error) {
	var interest models.Interest
	err := r.db.First(&interest, "job_id = ? AND user_id = ?", jobID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterestNotFound
		}
		return nil, err
	}
	return &interest, nil
}

func (r *InterestRepositoryImpl) FindByJob(jobID string) ([]models.Interest, error) {
	var interests []models.Interest
	err := r.db.Where("job_id = ?", jobID).Order("created_at ASC").Find(&interests).Error
	return interests, err
}
