package database

import (
	"errors"
	"fmt"

	"github.com/strawberrytart/auction-house/internal/auctionerrors"
	"github.com/strawberrytart/auction-house/internal/models"
	"gorm.io/gorm"
)

func (d *Database) CreateListing(listing *models.Listing) error {
	return d.db.Create(listing).Error
}

func (d *Database) GetListing(id string) (*models.Listing, error) {
	var listing models.Listing
	err := d.db.
		Preload("Owner").
		Preload("Winner").
		Preload("Category").
		First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auctionerrors.ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// GetActiveListings returns all active listings, newest first.
func (d *Database) GetActiveListings() ([]models.Listing, error) {
	var listings []models.Listing
	err := d.db.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Preload("Category").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// GetCategoryListings returns all listings in a category, newest first.
func (d *Database) GetCategoryListings(categoryID string) ([]models.Listing, error) {
	var listings []models.Listing
	err := d.db.
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// PlaceBid accepts a bid with a single conditional update so two competing
// bids can never both pass the price check: the listing row only moves to
// the new price when it is still active and the amount beats the current
// price (or matches the starting price for the first bid). Zero rows
// affected means the bid lost.
func (d *Database) PlaceBid(bid *models.Bid) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Listing{}).
			Where("id = ? AND is_active = ?", bid.ListingID, true).
			Where("(bid_count = 0 AND current_price <= ?) OR (bid_count > 0 AND current_price < ?)", bid.Amount, bid.Amount).
			Updates(map[string]interface{}{
				"current_price": bid.Amount,
				"bid_count":     gorm.Expr("bid_count + 1"),
			})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			var listing models.Listing
			if err := tx.First(&listing, "id = ?", bid.ListingID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return auctionerrors.ErrListingNotFound
				}
				return err
			}
			if !listing.IsActive {
				return auctionerrors.ErrListingClosed
			}
			return fmt.Errorf("current price is %.2f: %w", listing.CurrentPrice, auctionerrors.ErrBidTooLow)
		}

		return tx.Create(bid).Error
	})
}

// CloseListing deactivates a listing and fixes its winner from the highest
// bid (earliest bid wins amount ties). Closing an already-closed listing
// recomputes the same winner and changes nothing.
func (d *Database) CloseListing(id string) (*models.Listing, error) {
	var listing models.Listing
	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&listing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return auctionerrors.ErrListingNotFound
			}
			return err
		}

		var highest models.Bid
		err := tx.
			Where("listing_id = ?", id).
			Order("amount DESC, created_at ASC").
			First(&highest).Error
		if err == nil {
			listing.WinnerID = &highest.BidderID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		listing.IsActive = false
		return tx.Save(&listing).Error
	})
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (d *Database) AddWatcher(listingID, userID string) error {
	var listing models.Listing
	var user models.User

	if err := d.db.First(&listing, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auctionerrors.ErrListingNotFound
		}
		return err
	}

	if err := d.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auctionerrors.ErrUserNotFound
		}
		return err
	}

	return d.db.Model(&listing).Association("Watchers").Append(&user)
}

func (d *Database) RemoveWatcher(listingID, userID string) error {
	var listing models.Listing
	var user models.User

	if err := d.db.First(&listing, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auctionerrors.ErrListingNotFound
		}
		return err
	}

	if err := d.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auctionerrors.ErrUserNotFound
		}
		return err
	}

	return d.db.Model(&listing).Association("Watchers").Delete(&user)
}

func (d *Database) IsWatching(listingID, userID string) (bool, error) {
	var count int64
	err := d.db.Table("listing_watchers").
		Where("listing_id = ? AND user_id = ?", listingID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetWatchedListings returns all listings on the user's watchlist.
func (d *Database) GetWatchedListings(userID string) ([]models.Listing, error) {
	var user models.User
	if err := d.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auctionerrors.ErrUserNotFound
		}
		return nil, err
	}

	var listings []models.Listing
	err := d.db.Model(&user).Association("Watching").Find(&listings)
	if err != nil {
		return nil, err
	}
	return listings, nil
}
