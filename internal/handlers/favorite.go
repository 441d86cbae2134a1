package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/homefind-dev/homefind/db"
	"github.com/homefind-dev/homefind/internal/services"
	"github.com/homefind-dev/homefind/internal/utils"
)

func ToggleFavorite(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	propertyID, err := strconv.ParseUint(ctx.Param("property_id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID"})
		return
	}

	isFavorite, err := services.NewPropertyService(db.DB).ToggleFavorite(uint(propertyID), userID)

	if err != nil {
		log.Printf("Failed to toggle favorite for user %d, property %d: %v", userID, propertyID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}

func GetFavorites(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	favorites, err := services.NewPropertyService(db.DB).UserFavorites(userID)

	if err != nil {
		log.Printf("Failed to list favorites for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, favorites)
}
