package database

import (
	"errors"

	"github.com/strawberrytart/auction-house/internal/auctionerrors"
	"github.com/strawberrytart/auction-house/internal/models"
	"gorm.io/gorm"
)

// GetListingBids returns all bids for a listing, highest first.
func (d *Database) GetListingBids(listingID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := d.db.
		Where("listing_id = ?", listingID).
		Order("amount DESC, created_at ASC").
		Preload("Bidder").
		Find(&bids).Error
	if err != nil {
		return nil, err
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for a listing.
func (d *Database) GetWinningBid(listingID string) (*models.Bid, error) {
	var bid models.Bid
	err := d.db.
		Where("listing_id = ?", listingID).
		Order("amount DESC, created_at ASC").
		First(&bid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auctionerrors.ErrNoBids
		}
		return nil, err
	}
	return &bid, nil
}

// GetUserBids returns all bids placed by a user, newest first.
func (d *Database) GetUserBids(userID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := d.db.
		Where("bidder_id = ?", userID).
		Order("created_at DESC").
		Preload("Listing").
		Find(&bids).Error
	if err != nil {
		return nil, err
	}
	return bids, nil
}
