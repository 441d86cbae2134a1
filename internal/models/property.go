package models

// ListingType matches the wire encoding used by the client: 0 = rent, 1 = sale.
type ListingType int

const (
	ListingRent ListingType = iota
	ListingSale
)

type Property struct {
	ID          uint        `gorm:"primaryKey"`
	Title       string      `gorm:"size:255;not null"`
	Address     string      `gorm:"size:500;not null"`
	Price       float64     `gorm:"type:decimal(18,2);not null"`
	ListingType ListingType `gorm:"not null"`
	Bedrooms    int         `gorm:"not null"`
	Bathrooms   int         `gorm:"not null"`
	CarSpots    int         `gorm:"not null"`
	Description string      `gorm:"size:2000"`
	ImageUrls   string      `gorm:"size:4000"` // JSON-encoded []string

	// Relationships
	Favorites []Favorite `gorm:"foreignKey:PropertyID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
