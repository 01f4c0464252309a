package auth

import (
	"testing"
	"time"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	return cfg
}

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Email:     "alice@example.com",
		Role:      models.UserRoleEmployee,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testConfig())

	token, err := tm.GenerateAccessToken(testUser())
	require.NoError(t, err)

	claims, err := tm.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "employee", claims.Role)
	assert.Empty(t, claims.TokenType)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testConfig())

	token, err := tm.GenerateRefreshToken(testUser())
	require.NoError(t, err)

	claims, err := tm.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	tm := NewTokenManager(testConfig())
	user := testUser()

	access, err := tm.GenerateAccessToken(user)
	require.NoError(t, err)
	refresh, err := tm.GenerateRefreshToken(user)
	require.NoError(t, err)

	_, err = tm.ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	cfg := testConfig()
	tm := NewTokenManager(cfg)

	claims := &Claims{
		UserID: "user-1",
		Email:  "alice@example.com",
		Role:   "employee",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(cfg.JWT.AccessSecret))
	require.NoError(t, err)

	_, err = tm.ParseAccessToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretRejected(t *testing.T) {
	tm := NewTokenManager(testConfig())

	other := testConfig()
	other.JWT.AccessSecret = "another-secret"
	token, err := NewTokenManager(other).GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = tm.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGarbageTokenRejected(t *testing.T) {
	tm := NewTokenManager(testConfig())

	for _, tokenStr := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := tm.ParseAccessToken(tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
