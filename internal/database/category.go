package database

import (
	"errors"

	"github.com/strawberrytart/auction-house/internal/auctionerrors"
	"github.com/strawberrytart/auction-house/internal/models"
	"gorm.io/gorm"
)

func (d *Database) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := d.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (d *Database) GetCategory(id string) (*models.Category, error) {
	var category models.Category
	if err := d.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auctionerrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}
