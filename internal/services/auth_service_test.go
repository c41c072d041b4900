package services

import (
	"testing"
	"time"

	"github.com/locumconnect/locum-backend/internal/config"
	"github.com/locumconnect/locum-backend/internal/dto"
	"github.com/locumconnect/locum-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db, &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
	})
}

func TestRegisterPharmacistEntersVerificationQueue(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:         "sarah@test.test",
		Password:      "correct-horse-battery",
		Name:          "Sarah Johnson",
		Role:          models.RolePharmacist,
		LicenseNumber: "MA-RPH-12345",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, models.VerificationPending, resp.User.VerificationStatus)

	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", "sarah@test.test").Error)
	assert.NotEqual(t, "correct-horse-battery", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("correct-horse-battery")))
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "short@test.test",
		Password: "1234567",
		Name:     "Short",
		Role:     models.RoleOwner,
	})
	assert.Error(t, err)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "sneaky@test.test",
		Password: "long-enough-password",
		Name:     "Sneaky",
		Role:     models.RoleAdmin,
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	req := &dto.RegisterRequest{
		Email:    "taken@test.test",
		Password: "long-enough-password",
		Name:     "First",
		Role:     models.RoleOwner,
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "login@test.test",
		Password: "long-enough-password",
		Name:     "Login User",
		Role:     models.RoleOwner,
	})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "login@test.test", Password: "long-enough-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(&dto.LoginRequest{Email: "login@test.test", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@test.test", Password: "long-enough-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsOAuthOnlyAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	googleID := "google-sub-123"
	user := createPharmacist(t, db, models.VerificationPending)
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"password":  "",
		"google_id": googleID,
	}).Error)

	_, err := svc.Login(&dto.LoginRequest{Email: user.Email, Password: ""})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	registered, err := svc.Register(&dto.RegisterRequest{
		Email:    "rotate@test.test",
		Password: "long-enough-password",
		Name:     "Rotate User",
		Role:     models.RoleOwner,
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: registered.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// The consumed token is revoked and cannot be replayed.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: registered.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	registered, err := svc.Register(&dto.RegisterRequest{
		Email:    "logout@test.test",
		Password: "long-enough-password",
		Name:     "Logout User",
		Role:     models.RoleOwner,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: registered.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: registered.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
