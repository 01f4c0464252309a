package filestore

import (
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/google/uuid"
)

// InterestStore implements repositories.InterestRepository over
// interests.json.
type InterestStore struct {
	file *jsonFile
}

func (s *InterestStore) Create(interest *models.Interest) error {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	var interests []models.Interest
	if err := s.file.load(&interests); err != nil {
		return err
	}

	// The (jobId, userId) pair is unique. Hand back the existing record
	// instead of duplicating; the service relies on this.
	for i := range interests {
		if interests[i].JobID == interest.JobID && interests[i].UserID == interest.UserID {
			*interest = interests[i]
			return nil
		}
	}

	if interest.ID == "" {
		interest.ID = uuid.NewString()
	}
	interest.CreatedAt = time.Now().UTC()

	interests = append(interests, *interest)
	return s.file.save(interests)
}

func (s *InterestStore) FindByJobAndUser(jobID, userID string) (*models.Interest, error) {
	s.file.mu.RLock()
	defer s.file.mu.RUnlock()

	var interests []models.Interest
	if err := s.file.load(&interests); err != nil {
		return nil, err
	}
	for i := range interests {
		if interests[i].JobID == jobID && interests[i].UserID == userID {
			interest := interests[i]
			return &interest, nil
		}
	}
	return nil, repositories.ErrInterestNotFound
}

func (s *InterestStore) FindByJob(jobID string) ([]models.Interest, error) {
	s.file.mu.RLock()
	defer s.file.mu.RUnlock()

	var interests []models.Interest
	if err := s.file.load(&interests); err != nil {
		return nil, err
	}

	matched := make([]models.Interest, 0)
	for i := range interests {
		if interests[i].JobID == jobID {
			matched = append(matched, interests[i])
		}
	}
	return matched, nil
}
