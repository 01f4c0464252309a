package auth

import (
	"errors"
	"time"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the uniform failure for any parse, signature or
// expiry problem. Callers never learn whether a token was expired or
// tampered with.
var ErrInvalidToken = errors.New("invalid or expired token")

const refreshTokenType = "refresh"

// Claims carried by both access and refresh tokens.
type Claims struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the two token kinds. Access and
// refresh tokens are signed with separate secrets.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.JWT.AccessSecret),
		refreshSecret: []byte(cfg.JWT.RefreshSecret),
		accessTTL:     cfg.AccessTokenTTL(),
		refreshTTL:    cfg.RefreshTokenTTL(),
	}
}

// GenerateAccessToken signs a short-lived token embedding the user's
// identity. No side effects.
func (m *TokenManager) GenerateAccessToken(user *models.User) (string, error) {
	return m.sign(user, "", m.accessSecret, m.accessTTL)
}

// GenerateRefreshToken signs a longer-lived token marked type=refresh.
// Persistence of the token record is the caller's responsibility.
func (m *TokenManager) GenerateRefreshToken(user *models.User) (string, error) {
	return m.sign(user, refreshTokenType, m.refreshSecret, m.refreshTTL)
}

func (m *TokenManager) sign(user *models.User, tokenType string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseAccessToken verifies signature and expiry of an access token.
func (m *TokenManager) ParseAccessToken(tokenStr string) (*Claims, error) {
	claims, err := m.parse(tokenStr, m.accessSecret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType == refreshTokenType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseRefreshToken verifies signature and expiry of a refresh token.
// The persisted-set membership check happens in the auth service.
func (m *TokenManager) ParseRefreshToken(tokenStr string) (*Claims, error) {
	claims, err := m.parse(tokenStr, m.refreshSecret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != refreshTokenType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (m *TokenManager) parse(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
