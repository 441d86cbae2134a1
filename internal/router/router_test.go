package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/homefind-dev/homefind/db"
	"github.com/homefind-dev/homefind/internal/auth"
	"github.com/homefind-dev/homefind/internal/models"
	"github.com/homefind-dev/homefind/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter points the global db handle at a unique in-memory database
// and returns the real route table, so requests exercise the full stack.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(&models.User{}, &models.Property{}, &models.Favorite{}))

	db.DB = testDB

	return NewRouter()
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, email string) services.AuthResult {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":"hunter2hunter2"}`, email)
	w := doJSON(r, http.MethodPost, "/api/auth/register", body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result services.AuthResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result
}

func TestRegisterAndLoginFlow(t *testing.T) {
	r := setupRouter(t)

	registered := registerUser(t, r, "buyer@example.com")
	assert.Equal(t, "buyer@example.com", registered.Email)

	// Second registration with the same email conflicts.
	w := doJSON(r, http.MethodPost, "/api/auth/register",
		`{"email":"buyer@example.com","password":"hunter2hunter2"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Wrong password is rejected uniformly.
	w = doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"buyer@example.com","password":"not-the-password"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"buyer@example.com","password":"hunter2hunter2"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var loggedIn services.AuthResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loggedIn))
	assert.Equal(t, registered.UserID, loggedIn.UserID)
}

func TestRegisterValidation(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register", `{"email":"not-an-email","password":"hunter2hunter2"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/register", `{"email":"buyer@example.com","password":"short"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProperties(t *testing.T) {
	r := setupRouter(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.DB.Create(&models.Property{
			Title:       fmt.Sprintf("Listing %d", i),
			Address:     fmt.Sprintf("%d Collins Street, Melbourne CBD", i),
			Price:       800000 + float64(i),
			ListingType: models.ListingSale,
			Bedrooms:    2,
			Bathrooms:   1,
		}).Error)
	}

	user := registerUser(t, r, "buyer@example.com")
	require.NoError(t, db.DB.Create(&models.Favorite{UserID: user.UserID, PropertyID: 1}).Error)

	// Anonymous: favorite flags stay false.
	w := doJSON(r, http.MethodGet, "/api/properties?pageSize=2", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listing services.PropertyListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, 3, listing.TotalCount)
	assert.Equal(t, 2, listing.TotalPages)
	assert.Len(t, listing.Properties, 2)
	for _, property := range listing.Properties {
		assert.False(t, property.IsFavorite)
	}

	// Authenticated: the favorited row is flagged.
	w = doJSON(r, http.MethodGet, "/api/properties?pageSize=10", "", user.Token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))

	favorites := 0
	for _, property := range listing.Properties {
		if property.IsFavorite {
			favorites++
			assert.EqualValues(t, 1, property.ID)
		}
	}
	assert.Equal(t, 1, favorites)

	// A garbage token on an optional-auth route is just anonymous.
	w = doJSON(r, http.MethodGet, "/api/properties", "", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetPropertyByID(t *testing.T) {
	r := setupRouter(t)

	property := models.Property{
		Title:       "Modern 3-Bedroom Apartment in CBD",
		Address:     "123 Collins Street, Melbourne CBD",
		Price:       850000,
		ListingType: models.ListingSale,
		Bedrooms:    3,
		Bathrooms:   2,
		ImageUrls:   `["https://example.com/a.jpg"]`,
	}
	require.NoError(t, db.DB.Create(&property).Error)

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/api/properties/%d", property.ID), "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var response services.PropertyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, property.ID, response.ID)
	assert.Equal(t, []string{"https://example.com/a.jpg"}, response.ImageUrls)

	w = doJSON(r, http.MethodGet, "/api/properties/99999", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoriteEndpoints(t *testing.T) {
	r := setupRouter(t)

	property := models.Property{
		Title:       "Cozy 2-Bedroom Unit in St Kilda",
		Address:     "456 Acland Street, St Kilda",
		Price:       2200,
		ListingType: models.ListingRent,
		Bedrooms:    2,
		Bathrooms:   1,
	}
	require.NoError(t, db.DB.Create(&property).Error)

	// Favorites require a bearer token.
	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/favorites/%d", property.ID), "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	user := registerUser(t, r, "buyer@example.com")

	toggle := func() bool {
		w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/favorites/%d", property.ID), "", user.Token)
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			IsFavorite bool `json:"isFavorite"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		return response.IsFavorite
	}

	assert.True(t, toggle())
	assert.False(t, toggle())
	assert.True(t, toggle())

	w = doJSON(r, http.MethodGet, "/api/favorites", "", user.Token)
	require.Equal(t, http.StatusOK, w.Code)

	var favorites []services.PropertyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, property.ID, favorites[0].ID)
	assert.True(t, favorites[0].IsFavorite)
}
