package services

import (
	"testing"

	"github.com/homefind-dev/homefind/internal/auth"
	"github.com/homefind-dev/homefind/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIssuesTokenForNewUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	result, err := svc.Register("Buyer@Example.com ", "hunter2hunter2")
	require.NoError(t, err)

	// Email is normalized before storage.
	assert.Equal(t, "buyer@example.com", result.Email)
	assert.NotZero(t, result.UserID)

	token, err := auth.VerifyJWT(result.Token)
	require.NoError(t, err)

	userID, err := auth.UserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, result.UserID, userID)

	var stored models.User
	require.NoError(t, db.Where("email = ?", "buyer@example.com").First(&stored).Error)
	assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash, "password must not be stored in clear")
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("buyer@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, err = svc.Register("buyer@example.com", "anotherpassword")
	assert.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "conflicting registration must not add a row")
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	registered, err := svc.Register("buyer@example.com", "hunter2hunter2")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("buyer@example.com", "not-the-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login("stranger@example.com", "hunter2hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("valid credentials", func(t *testing.T) {
		result, err := svc.Login("buyer@example.com", "hunter2hunter2")
		require.NoError(t, err)
		assert.Equal(t, registered.UserID, result.UserID)

		token, err := auth.VerifyJWT(result.Token)
		require.NoError(t, err)

		userID, err := auth.UserIDFromToken(token)
		require.NoError(t, err)
		assert.Equal(t, registered.UserID, userID)
	})
}
