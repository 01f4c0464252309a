package services

import (
	"testing"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/filestore"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeps(t *testing.T) (*repositories.Repositories, *auth.TokenManager) {
	t.Helper()

	repos, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	return repos, auth.NewTokenManager(cfg)
}

func newTestAuthService(t *testing.T) (AuthService, *repositories.Repositories, *auth.TokenManager) {
	t.Helper()
	repos, tokens := newTestDeps(t)
	return NewAuthService(repos.Users, repos.RefreshTokens, tokens), repos, tokens
}

func employerRegistration() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:            "Acme HR",
		Email:           "hr@acme.example",
		Phone:           "+49123456789",
		Role:            models.UserRoleEmployer,
		CompanyName:     "Acme",
		CompanyLocation: "Berlin",
	}
}

func employeeRegistration() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:  "Bob",
		Email: "bob@example.com",
		Phone: "+49987654321",
		Role:  models.UserRoleEmployee,
		Experiences: []models.Experience{
			{Company: "Initech", Position: "Engineer", Years: 3},
		},
	}
}

func TestRegisterIssuesBothTokens(t *testing.T) {
	svc, repos, tokens := newTestAuthService(t)

	resp, err := svc.Register(employeeRegistration())
	require.NoError(t, err)

	assert.Equal(t, "User created successfully", resp.Message)
	require.NotNil(t, resp.User)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, models.UserRoleEmployee, resp.User.Role)
	assert.Len(t, resp.User.Experiences, 1)

	claims, err := tokens.ParseAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	// The refresh token is persisted for later revocation.
	record, err := repos.RefreshTokens.FindByToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, record.UserID)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Register(employerRegistration())
	require.NoError(t, err)

	_, err = svc.Register(employerRegistration())
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeEmailAlreadyExists, appErr.Code)
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	req := employeeRegistration()
	req.Role = "admin"

	_, err := svc.Register(req)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeInvalidUserRole, appErr.Code)
}

func TestLoginByEmailOnly(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	registered, err := svc.Register(employerRegistration())
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "hr@acme.example"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, registered.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestLoginUnknownEmailIsNotFound(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(&dto.LoginRequest{Email: "nobody@example.com"})
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	svc, _, tokens := newTestAuthService(t)

	registered, err := svc.Register(employeeRegistration())
	require.NoError(t, err)

	resp, err := svc.Refresh(registered.RefreshToken)
	require.NoError(t, err)

	claims, err := tokens.ParseAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
}

func TestRefreshAfterLogoutFails(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	registered, err := svc.Register(employeeRegistration())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(registered.RefreshToken))

	// Cryptographically the token is still valid, but it is no longer
	// in the persisted set.
	_, err = svc.Refresh(registered.RefreshToken)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeInvalidToken, appErr.Code)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	registered, err := svc.Register(employeeRegistration())
	require.NoError(t, err)

	_, err = svc.Refresh(registered.AccessToken)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeInvalidToken, appErr.Code)
}

func TestLogoutWithoutTokenIsNoOp(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	assert.NoError(t, svc.Logout(""))
	assert.NoError(t, svc.Logout("never-issued"))
}

func TestRevokeAllForUserDropsEveryToken(t *testing.T) {
	svc, repos, _ := newTestAuthService(t)

	registered, err := svc.Register(employeeRegistration())
	require.NoError(t, err)

	// A second session for the same user.
	again, err := svc.Login(&dto.LoginRequest{Email: "bob@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.RevokeAllForUser(registered.User.ID))

	_, err = repos.RefreshTokens.FindByToken(registered.RefreshToken)
	assert.ErrorIs(t, err, repositories.ErrRefreshTokenNotFound)
	_, err = repos.RefreshTokens.FindByToken(again.RefreshToken)
	assert.ErrorIs(t, err, repositories.ErrRefreshTokenNotFound)
}
