package filestore

import (
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/google/uuid"
)

// UserStore implements repositories.UserRepository over users.json.
type UserStore struct {
	file *jsonFile
}

func (s *UserStore) Create(user *models.User) error {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	var users []models.User
	if err := s.file.load(&users); err != nil {
		return err
	}

	for i := range users {
		if users[i].Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	users = append(users, *user)
	return s.file.save(users)
}

func (s *UserStore) FindByID(id string) (*models.User, error) {
	s.file.mu.RLock()
	defer s.file.mu.RUnlock()

	var users []models.User
	if err := s.file.load(&users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			user := users[i]
			return &user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	s.file.mu.RLock()
	defer s.file.mu.RUnlock()

	var users []models.User
	if err := s.file.load(&users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			user := users[i]
			return &user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}
