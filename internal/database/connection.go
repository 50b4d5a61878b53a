package database

import (
	"errors"

	"github.com/strawberrytart/auction-house/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func (d *Database) Connect(dsn string) error {
	if dsn == "" {
		return errors.New("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Listing{},
		&models.Bid{},
		&models.Comment{},
	)
	if err != nil {
		return err
	}

	d.db = db

	return nil
}
