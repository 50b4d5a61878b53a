package models

import (
	"github.com/google/uuid"
	"time"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time

	Listings []Listing `gorm:"foreignKey:OwnerID"`
	Bids     []Bid     `gorm:"foreignKey:BidderID"`
	Watching []Listing `gorm:"many2many:listing_watchers"`
}
