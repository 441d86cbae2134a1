package services

import (
	"encoding/json"
	"errors"
	"math"

	"github.com/homefind-dev/homefind/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PropertyFilter holds the optional listing predicates. Nil fields are not
// applied; the rest are combined with AND. Page and PageSize must be
// normalized by the caller (page >= 1, pageSize >= 1).
type PropertyFilter struct {
	MinPrice    *float64
	MaxPrice    *float64
	MinBedrooms *int
	MaxBedrooms *int
	Suburb      string
	ListingType *models.ListingType
	Page        int
	PageSize    int
}

type PropertyResponse struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Address     string             `json:"address"`
	Price       float64            `json:"price"`
	ListingType models.ListingType `json:"listingType"`
	Bedrooms    int                `json:"bedrooms"`
	Bathrooms   int                `json:"bathrooms"`
	CarSpots    int                `json:"carSpots"`
	Description string             `json:"description"`
	ImageUrls   []string           `json:"imageUrls"`
	IsFavorite  bool               `json:"isFavorite"`
}

type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalCount int                `json:"totalCount"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}

type PropertyService struct {
	db *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{db: db}
}

// List returns one page of properties matching the filter, with the total
// match count taken before pagination. When userID is non-nil each result
// carries that user's favorite state; anonymous requests get false.
func (s *PropertyService) List(filter PropertyFilter, userID *uint) (*PropertyListResponse, error) {
	query := applyFilter(s.db.Model(&models.Property{}), filter).Session(&gorm.Session{})

	var totalCount int64

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, err
	}

	var properties []models.Property

	if err := query.
		Order("id").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&properties).Error; err != nil {
		return nil, err
	}

	favorited, err := s.favoritedSet(userID, properties)

	if err != nil {
		return nil, err
	}

	responses := make([]PropertyResponse, 0, len(properties))

	for _, property := range properties {
		responses = append(responses, buildPropertyResponse(property, favorited[property.ID]))
	}

	return &PropertyListResponse{
		Properties: responses,
		TotalCount: int(totalCount),
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(filter.PageSize))),
	}, nil
}

// GetByID returns the property with the given id, or (nil, nil) when it
// does not exist.
func (s *PropertyService) GetByID(id uint, userID *uint) (*PropertyResponse, error) {
	var property models.Property

	if err := s.db.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	isFavorite := false

	if userID != nil {
		var count int64

		if err := s.db.Model(&models.Favorite{}).
			Where("user_id = ? AND property_id = ?", *userID, property.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}

		isFavorite = count > 0
	}

	response := buildPropertyResponse(property, isFavorite)
	return &response, nil
}

// ToggleFavorite flips the favorite state for (userID, propertyID) and
// returns the resulting state. The delete and the insert run in one
// transaction; the insert uses ON CONFLICT DO NOTHING on the unique pair so
// concurrent toggles cannot double-insert.
func (s *PropertyService) ToggleFavorite(propertyID, userID uint) (bool, error) {
	var nowFavorite bool

	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND property_id = ?", userID, propertyID).
			Delete(&models.Favorite{})

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			nowFavorite = false
			return nil
		}

		favorite := models.Favorite{UserID: userID, PropertyID: propertyID}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "property_id"}},
			DoNothing: true,
		}).Create(&favorite).Error; err != nil {
			return err
		}

		nowFavorite = true
		return nil
	})

	return nowFavorite, err
}

// UserFavorites returns every property the user has favorited, oldest first.
func (s *PropertyService) UserFavorites(userID uint) ([]PropertyResponse, error) {
	var favorites []models.Favorite

	if err := s.db.Where("user_id = ?", userID).
		Order("id").
		Preload("Property").
		Find(&favorites).Error; err != nil {
		return nil, err
	}

	responses := make([]PropertyResponse, 0, len(favorites))

	for _, favorite := range favorites {
		responses = append(responses, buildPropertyResponse(favorite.Property, true))
	}

	return responses, nil
}

func applyFilter(query *gorm.DB, filter PropertyFilter) *gorm.DB {
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}

	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	if filter.MinBedrooms != nil {
		query = query.Where("bedrooms >= ?", *filter.MinBedrooms)
	}

	if filter.MaxBedrooms != nil {
		query = query.Where("bedrooms <= ?", *filter.MaxBedrooms)
	}

	if filter.Suburb != "" {
		query = query.Where("address LIKE ?", "%"+filter.Suburb+"%")
	}

	if filter.ListingType != nil {
		query = query.Where("listing_type = ?", *filter.ListingType)
	}

	return query
}

// favoritedSet fetches the user's favorites among the given properties in a
// single query. Anonymous requests get an empty set.
func (s *PropertyService) favoritedSet(userID *uint, properties []models.Property) (map[uint]bool, error) {
	favorited := make(map[uint]bool)

	if userID == nil || len(properties) == 0 {
		return favorited, nil
	}

	propertyIDs := make([]uint, 0, len(properties))

	for _, property := range properties {
		propertyIDs = append(propertyIDs, property.ID)
	}

	var favorites []models.Favorite

	if err := s.db.Where("user_id = ? AND property_id IN ?", *userID, propertyIDs).
		Find(&favorites).Error; err != nil {
		return nil, err
	}

	for _, favorite := range favorites {
		favorited[favorite.PropertyID] = true
	}

	return favorited, nil
}

func buildPropertyResponse(property models.Property, isFavorite bool) PropertyResponse {
	return PropertyResponse{
		ID:          property.ID,
		Title:       property.Title,
		Address:     property.Address,
		Price:       property.Price,
		ListingType: property.ListingType,
		Bedrooms:    property.Bedrooms,
		Bathrooms:   property.Bathrooms,
		CarSpots:    property.CarSpots,
		Description: property.Description,
		ImageUrls:   decodeImageUrls(property.ImageUrls),
		IsFavorite:  isFavorite,
	}
}

// decodeImageUrls expands the serialized column into a slice. Malformed
// stored data degrades to an empty slice instead of failing the request.
func decodeImageUrls(raw string) []string {
	if raw == "" {
		return []string{}
	}

	var urls []string

	if err := json.Unmarshal([]byte(raw), &urls); err != nil || urls == nil {
		return []string{}
	}

	return urls
}
