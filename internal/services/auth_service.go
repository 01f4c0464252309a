package services

import (
	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(refreshToken string) (*dto.RefreshResponse, error)
	Logout(refreshToken string) error
	RevokeAllForUser(userID string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	tokens           *auth.TokenManager
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	tokens *auth.TokenManager,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		tokens:           tokens,
	}
}

// Register creates the user and issues both tokens.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !models.ValidRole(req.Role) {
		return nil, appErrors.ErrInvalidUserRole
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Photo: req.Photo,
		Role:  req.Role,
	}
	switch req.Role {
	case models.UserRoleEmployer:
		user.CompanyName = req.CompanyName
		user.CompanyLocation = req.CompanyLocation
		user.CompanyDescription = req.CompanyDescription
	case models.UserRoleEmployee:
		user.Experiences = req.Experiences
	}

	if err := s.userRepo.Create(user); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	accessToken, refreshToken, err := s.issueTokens(user)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Message:      "User created successfully",
		User:         dto.NewUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login looks the user up by email and issues both tokens. There is no
// password in this system.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	accessToken, refreshToken, err := s.issueTokens(user)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Message:      "Login successful",
		User:         dto.NewUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a refresh token for a new access token. The token
// must verify cryptographically AND still be present in the persisted
// set with a matching user; either failure is uniform 401.
func (s *AuthServiceImpl) Refresh(refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	record, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil || record.UserID != claims.UserID {
		return nil, appErrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	accessToken, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

// Logout revokes one refresh token. Revoking an absent token succeeds.
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.refreshTokenRepo.DeleteByToken(refreshToken); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

// RevokeAllForUser drops every persisted refresh token of the user.
func (s *AuthServiceImpl) RevokeAllForUser(userID string) error {
	if err := s.refreshTokenRepo.DeleteByUserID(userID); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

// issueTokens signs both tokens and persists the refresh token record
// so it can be revoked later.
func (s *AuthServiceImpl) issueTokens(user *models.User) (string, string, error) {
	accessToken, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return "", "", err
	}

	record := &models.RefreshToken{
		UserID: user.ID,
		Token:  refreshToken,
	}
	if err := s.refreshTokenRepo.Create(record); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
