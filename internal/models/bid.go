package models

import (
	"github.com/google/uuid"
	"time"
)

// Bid is append-only: rows are never updated or deleted.
type Bid struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ListingID uuid.UUID `gorm:"not null;index"`
	BidderID  uuid.UUID `gorm:"not null"`
	Amount    float64   `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time

	Bidder  User    `gorm:"foreignKey:BidderID"`
	Listing Listing `gorm:"foreignKey:ListingID"`
}
