package filestore

import (
	"sort"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/google/uuid"
)

// JobStore implements repositories.JobRepository over jobs.json.
type JobStore struct {
	file *jsonFile
}

func (s *JobStore) Create(job *models.Job) error {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	var jobs []models.Job
	if err := s.file.load(&jobs); err != nil {
		return err
	}

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now
	job.IsClosed = false

	jobs = append(jobs, *job)
	return s.file.save(jobs)
}

func (s *JobStore) FindByID(id string) (*models.Job, error) {
	s.file.mu.RLock()
	defer s.file.mu.RUnlock()

	var jobs []models.Job
	if err := s.file.load(&jobs); err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == id {
			job := jobs[i]
			return &job, nil
		}
	}
	return nil, repositories.ErrJobNotFound
}

func (s *JobStore) FindActive() ([]models.Job, error) {
	s.file.mu.RLock()
	defer s.file.mu.RUnlock()

	var jobs []models.Job
	if err := s.file.load(&jobs); err != nil {
		return nil, err
	}

	active := make([]models.Job, 0, len(jobs))
	for i := range jobs {
		if !jobs[i].IsClosed {
			active = append(active, jobs[i])
		}
	}
	sortNewestFirst(active)
	return active, nil
}

func (s *JobStore) FindByUser(userID string) ([]models.Job, error) {
	s.file.mu.RLock()
	defer s.file.mu.RUnlock()

	var jobs []models.Job
	if err := s.file.load(&jobs); err != nil {
		return nil, err
	}

	mine := make([]models.Job, 0)
	for i := range jobs {
		if jobs[i].PostedBy == userID {
			mine = append(mine, jobs[i])
		}
	}
	sortNewestFirst(mine)
	return mine, nil
}

func (s *JobStore) Close(id string) (*models.Job, error) {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	var jobs []models.Job
	if err := s.file.load(&jobs); err != nil {
		return nil, err
	}

	for i := range jobs {
		if jobs[i].ID == id {
			jobs[i].IsClosed = true
			jobs[i].UpdatedAt = time.Now().UTC()
			if err := s.file.save(jobs); err != nil {
				return nil, err
			}
			job := jobs[i]
			return &job, nil
		}
	}
	return nil, repositories.ErrJobNotFound
}

func sortNewestFirst(jobs []models.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
}
