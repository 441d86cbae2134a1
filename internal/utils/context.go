package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/homefind-dev/homefind/internal/middleware"
	"github.com/homefind-dev/homefind/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("User not authenticated")
	}

	authenticatedUser, ok := user.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("Invalid user type in context")
	}

	return authenticatedUser, nil
}

func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

// OptionalUserID returns the authenticated user's ID, or nil for an
// anonymous request.
func OptionalUserID(ctx *gin.Context) *uint {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return nil
	}

	return &user.ID
}
