package models

import "time"

// Favorite is a plain join row, not a gorm.Model: a soft-deleted row would
// keep occupying the unique (user_id, property_id) index and block the user
// from favoriting the same property again.
type Favorite struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_user_property"`
	PropertyID uint      `gorm:"not null;uniqueIndex:idx_user_property"`
	CreatedAt  time.Time

	// Relationships
	User     User     `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Property Property `gorm:"foreignKey:PropertyID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
