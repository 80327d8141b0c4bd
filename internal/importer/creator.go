package importer

import (
	"gorm.io/gorm"

	"github.com/homeledger/backend/internal/models"
)

// Create creates a home and all its bills. It is all or nothing: when any
// resource cannot be created, nothing is.
func Create(db *gorm.DB, resource Home) (models.Home, error) {
	// Start a transaction so we can roll back all created resources if an error occurs
	tx := db.Begin()

	home := resource.Model
	err := tx.Create(&home).Error
	if err != nil {
		tx.Rollback()
		return models.Home{}, err
	}

	for _, bill := range resource.Bills {
		bill.HomeID = home.ID
		err := tx.Create(&bill).Error
		if err != nil {
			tx.Rollback()
			return models.Home{}, err
		}
	}

	err = tx.Commit().Error
	if err != nil {
		return models.Home{}, err
	}

	return home, nil
}
