package models

import (
	"github.com/google/uuid"
)

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name string    `gorm:"uniqueIndex;not null"`

	Listings []Listing `gorm:"foreignKey:CategoryID"`
}
