package database

import (
	"github.com/strawberrytart/auction-house/internal/models"
)

func (d *Database) SaveComment(comment *models.Comment) error {
	return d.db.Create(comment).Error
}

// GetListingComments returns a listing's comments, newest first.
func (d *Database) GetListingComments(listingID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := d.db.
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Preload("Commenter").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
