package services

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoutout_backend/internal/auth"
	"shoutout_backend/internal/config"
	"shoutout_backend/internal/models"
	"shoutout_backend/internal/services/dto"
	"shoutout_backend/pkg/apperrors"
)

func TestMain(m *testing.M) {
	// Token issuance reads the global config; tests never touch a
	// config file.
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	os.Exit(m.Run())
}

func newAuthServiceForTest() (AuthService, *fakeUserRepo, *fakeRefreshTokenRepo) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeRefreshTokenRepo()
	svc := NewAuthService(userRepo, tokenRepo, nopEmailProvider{})
	return svc, userRepo, tokenRepo
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	svc, userRepo, _ := newAuthServiceForTest()

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "sam@example.com",
		Password: "correct-horse",
		Name:     "Sam",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "sam@example.com", resp.User.Email)

	stored, err := userRepo.FindByEmail("sam@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleCustomer, stored.Role)
	assert.NotEmpty(t, stored.VerificationToken)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)

	login, err := svc.Login(&dto.LoginRequest{Email: "sam@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	claims, err := auth.ParseToken(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, string(models.UserRoleCustomer), claims.Role)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Register(&dto.RegisterRequest{Email: "sam@example.com", Password: "correct-horse", Name: "Sam"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Email: "sam@example.com", Password: "correct-horse", Name: "Sam Again"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthServiceRegisterWeakPassword(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Register(&dto.RegisterRequest{Email: "sam@example.com", Password: "short", Name: "Sam"})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestAuthServiceLoginFailures(t *testing.T) {
	svc, userRepo, _ := newAuthServiceForTest()

	_, err := svc.Register(&dto.RegisterRequest{Email: "sam@example.com", Password: "correct-horse", Name: "Sam"})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "sam@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	user, err := userRepo.FindByEmail("sam@example.com")
	require.NoError(t, err)
	require.NoError(t, userRepo.UpdateStatus(user.ID, models.UserStatusSuspended))

	_, err = svc.Login(&dto.LoginRequest{Email: "sam@example.com", Password: "correct-horse"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestAuthServiceRefreshRotation(t *testing.T) {
	svc, _, tokenRepo := newAuthServiceForTest()

	resp, err := svc.Register(&dto.RegisterRequest{Email: "sam@example.com", Password: "correct-horse", Name: "Sam"})
	require.NoError(t, err)

	rotated, err := svc.Refresh(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, rotated.RefreshToken)

	// The presented token died in the rotation.
	_, err = svc.Refresh(resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = tokenRepo.Find(rotated.RefreshToken)
	require.NoError(t, err)
}

func TestAuthServiceRefreshExpired(t *testing.T) {
	svc, _, tokenRepo := newAuthServiceForTest()

	resp, err := svc.Register(&dto.RegisterRequest{Email: "sam@example.com", Password: "correct-horse", Name: "Sam"})
	require.NoError(t, err)

	stored, err := tokenRepo.Find(resp.RefreshToken)
	require.NoError(t, err)
	stored.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, tokenRepo.Create(stored)) // overwrite with expired copy

	_, err = svc.Refresh(resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)

	// An expired token is also purged.
	_, err = tokenRepo.Find(resp.RefreshToken)
	require.Error(t, err)
}

func TestAuthServicePasswordResetFlow(t *testing.T) {
	svc, userRepo, tokenRepo := newAuthServiceForTest()

	resp, err := svc.Register(&dto.RegisterRequest{Email: "sam@example.com", Password: "correct-horse", Name: "Sam"})
	require.NoError(t, err)

	// Unknown addresses are acknowledged without error.
	require.NoError(t, svc.RequestPasswordReset("nobody@example.com"))

	require.NoError(t, svc.RequestPasswordReset("sam@example.com"))

	user, err := userRepo.FindByEmail("sam@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, user.ResetToken)

	require.NoError(t, svc.ResetPassword(user.ResetToken, "new-password-1"))

	// Old sessions die with the old password.
	_, err = tokenRepo.Find(resp.RefreshToken)
	require.Error(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "sam@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "sam@example.com", Password: "new-password-1"})
	require.NoError(t, err)

	// The reset token is single-use.
	require.Error(t, svc.ResetPassword(user.ResetToken, "another-pass-2"))
}

func TestAuthServiceVerifyEmail(t *testing.T) {
	svc, userRepo, _ := newAuthServiceForTest()

	_, err := svc.Register(&dto.RegisterRequest{Email: "sam@example.com", Password: "correct-horse", Name: "Sam"})
	require.NoError(t, err)

	user, err := userRepo.FindByEmail("sam@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(user.VerificationToken))

	verified, err := userRepo.FindByEmail("sam@example.com")
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
	assert.Empty(t, verified.VerificationToken)

	assert.ErrorIs(t, svc.VerifyEmail("bogus"), apperrors.ErrInvalidToken)
}

func TestAuthServiceChangePassword(t *testing.T) {
	svc, userRepo, _ := newAuthServiceForTest()

	_, err := svc.Register(&dto.RegisterRequest{Email: "sam@example.com", Password: "correct-horse", Name: "Sam"})
	require.NoError(t, err)
	user, err := userRepo.FindByEmail("sam@example.com")
	require.NoError(t, err)

	err = svc.ChangePassword(user.ID, &dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "new-password-1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	err = svc.ChangePassword(user.ID, &dto.ChangePasswordRequest{CurrentPassword: "correct-horse", NewPassword: "new-password-1"})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "sam@example.com", Password: "new-password-1"})
	require.NoError(t, err)
}
