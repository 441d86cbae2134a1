package services

import (
	"encoding/json"
	"testing"

	"github.com/homefind-dev/homefind/internal/auth"
	"github.com/homefind-dev/homefind/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a unique in-memory database per test to avoid
// cross-test collisions.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Property{}, &models.Favorite{}))

	return db
}

func createProperty(t *testing.T, db *gorm.DB, property models.Property) models.Property {
	t.Helper()

	require.NoError(t, db.Create(&property).Error)
	return property
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func encodeUrls(t *testing.T, urls []string) string {
	t.Helper()

	encoded, err := json.Marshal(urls)
	require.NoError(t, err)
	return string(encoded)
}
