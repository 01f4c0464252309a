package filestore

import (
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/google/uuid"
)

// RefreshTokenStore implements repositories.RefreshTokenRepository over
// refreshTokens.json.
type RefreshTokenStore struct {
	file *jsonFile
}

func (s *RefreshTokenStore) Create(token *models.RefreshToken) error {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	var tokens []models.RefreshToken
	if err := s.file.load(&tokens); err != nil {
		return err
	}

	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	token.CreatedAt = time.Now().UTC()

	tokens = append(tokens, *token)
	return s.file.save(tokens)
}

func (s *RefreshTokenStore) FindByToken(token string) (*models.RefreshToken, error) {
	s.file.mu.RLock()
	defer s.file.mu.RUnlock()

	var tokens []models.RefreshToken
	if err := s.file.load(&tokens); err != nil {
		return nil, err
	}
	for i := range tokens {
		if tokens[i].Token == token {
			record := tokens[i]
			return &record, nil
		}
	}
	return nil, repositories.ErrRefreshTokenNotFound
}

func (s *RefreshTokenStore) DeleteByToken(token string) error {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	var tokens []models.RefreshToken
	if err := s.file.load(&tokens); err != nil {
		return err
	}

	kept := make([]models.RefreshToken, 0, len(tokens))
	for i := range tokens {
		if tokens[i].Token != token {
			kept = append(kept, tokens[i])
		}
	}
	return s.file.save(kept)
}

func (s *RefreshTokenStore) DeleteByUserID(userID string) error {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	var tokens []models.RefreshToken
	if err := s.file.load(&tokens); err != nil {
		return err
	}

	kept := make([]models.RefreshToken, 0, len(tokens))
	for i := range tokens {
		if tokens[i].UserID != userID {
			kept = append(kept, tokens[i])
		}
	}
	return s.file.save(kept)
}
