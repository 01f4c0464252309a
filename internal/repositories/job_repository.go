package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	// FindActive returns open jobs, newest first.
	FindActive() ([]models.Job, error)
	// FindByUser returns all jobs posted by the user, newest first.
	FindByUser(userID string) ([]models.Job, error)
	// Close flips IsClosed to true and returns the updated job.
	// Closing an already closed job succeeds unchanged.
	Close(id string) (*models.Job, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindActive() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("is_closed = ?", false).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByUser(userID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("posted_by = ?", userID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Close(id string) (*models.Job, error) {
	result := r.db.Model(&models.Job{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_closed":  true,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}
	return r.FindByID(id)
}
