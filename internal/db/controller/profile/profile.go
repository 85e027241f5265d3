// Package profile provides read and upsert operations for the singleton
// barangay profile row, following the same protocol as the company settings:
// fixed key, defaults on absent read, create-if-absent-else-update on write.
package profile

import (
	"errors"

	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves the profile row, or an empty default object when none exists.
func Get(db *gorm.DB) (*models.BarangayProfile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var p models.BarangayProfile

	result := db.First(&p, models.SingletonID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return &models.BarangayProfile{ID: models.SingletonID}, nil
		}

		return nil, result.Error
	}

	return &p, nil
}

// Save upserts the profile row and returns the fresh row.
func Save(db *gorm.DB, in models.BarangayProfile) (*models.BarangayProfile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var current models.BarangayProfile

	result := db.First(&current, models.SingletonID)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		in.ID = models.SingletonID

		if err := db.Create(&in).Error; err != nil {
			// Concurrent first write: the fixed key rejects the second
			// insert, fall back to updating the surviving row.
			if err2 := db.First(&current, models.SingletonID).Error; err2 != nil {
				return nil, err
			}

			return update(db, in)
		}

		return &in, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return update(db, in)
}

func update(db *gorm.DB, in models.BarangayProfile) (*models.BarangayProfile, error) {
	updates := map[string]interface{}{
		"barangay_name": in.BarangayName,
		"municipality":  in.Municipality,
		"province":      in.Province,
		"place_issued":  in.PlaceIssued,
	}

	if err := db.Model(&models.BarangayProfile{}).
		Where("id = ?", models.SingletonID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	var fresh models.BarangayProfile
	if err := db.First(&fresh, models.SingletonID).Error; err != nil {
		return nil, err
	}

	return &fresh, nil
}
