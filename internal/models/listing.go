package models

import (
	"github.com/google/uuid"
	"time"
)

type Listing struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string     `gorm:"not null"`
	Description string     `gorm:"type:text"`
	ImageURL    string
	CategoryID  *uuid.UUID

	// StartingPrice is immutable; CurrentPrice is the derived display
	// price, equal to the highest accepted bid or StartingPrice when
	// no bids exist.
	StartingPrice float64 `gorm:"type:numeric(12,2);not null"`
	CurrentPrice  float64 `gorm:"type:numeric(12,2);not null"`
	BidCount      int     `gorm:"not null;default:0"`
	IsActive      bool    `gorm:"not null;default:true"`

	OwnerID   uuid.UUID  `gorm:"not null"`
	WinnerID  *uuid.UUID
	CreatedAt time.Time

	Owner    User      `gorm:"foreignKey:OwnerID"`
	Winner   *User     `gorm:"foreignKey:WinnerID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
	Bids     []Bid     `gorm:"foreignKey:ListingID"`
	Comments []Comment `gorm:"foreignKey:ListingID"`
	Watchers []User    `gorm:"many2many:listing_watchers"`
}
