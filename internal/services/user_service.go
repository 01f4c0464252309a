package services

import (
	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

type UserService interface {
	GetUser(userID string) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// GetUser returns the public profile for a user id.
func (s *UserServiceImpl) GetUser(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}
