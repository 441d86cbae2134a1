package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	// Relationships
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
