package models

import (
	"github.com/google/uuid"
	"time"
)

// Comment is immutable once created.
type Comment struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ListingID   uuid.UUID `gorm:"not null;index"`
	CommenterID uuid.UUID `gorm:"not null"`
	Text        string    `gorm:"type:text;not null"`
	CreatedAt   time.Time

	Commenter User    `gorm:"foreignKey:CommenterID"`
	Listing   Listing `gorm:"foreignKey:ListingID"`
}
