package database

import (
	"errors"
	"strings"

	"github.com/strawberrytart/auction-house/internal/auctionerrors"
	"github.com/strawberrytart/auction-house/internal/models"
	"gorm.io/gorm"
)

func (d *Database) SaveUser(user *models.User) error {
	if err := d.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if strings.Contains(err.Error(), "email") {
				return auctionerrors.ErrEmailTaken
			}
			return auctionerrors.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (d *Database) GetUser(id string) (*models.User, error) {
	user := models.User{}
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auctionerrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (d *Database) FindUserByUsername(username string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auctionerrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
