package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/homefind-dev/homefind/db"
	"github.com/homefind-dev/homefind/internal/models"
	"github.com/homefind-dev/homefind/internal/services"
	"github.com/homefind-dev/homefind/internal/utils"
)

type PropertyQuery struct {
	MinPrice    *float64 `form:"minPrice"`
	MaxPrice    *float64 `form:"maxPrice"`
	MinBedrooms *int     `form:"minBedrooms"`
	MaxBedrooms *int     `form:"maxBedrooms"`
	Suburb      string   `form:"suburb"`
	ListingType *int     `form:"listingType"`
	Page        int      `form:"page,default=1"`
	PageSize    int      `form:"pageSize,default=10"`
}

func GetProperties(ctx *gin.Context) {
	var query PropertyQuery

	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	filter := services.PropertyFilter{
		MinPrice:    query.MinPrice,
		MaxPrice:    query.MaxPrice,
		MinBedrooms: query.MinBedrooms,
		MaxBedrooms: query.MaxBedrooms,
		Suburb:      query.Suburb,
		Page:        query.Page,
		PageSize:    query.PageSize,
	}

	if query.ListingType != nil {
		listingType := models.ListingType(*query.ListingType)
		filter.ListingType = &listingType
	}

	// The service requires page >= 1 and pageSize >= 1.
	if filter.Page < 1 {
		filter.Page = 1
	}

	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	result, err := services.NewPropertyService(db.DB).List(filter, utils.OptionalUserID(ctx))

	if err != nil {
		log.Printf("Failed to list properties: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func GetProperty(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID"})
		return
	}

	property, err := services.NewPropertyService(db.DB).GetByID(uint(id), utils.OptionalUserID(ctx))

	if err != nil {
		log.Printf("Failed to fetch property %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if property == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	ctx.JSON(http.StatusOK, property)
}
