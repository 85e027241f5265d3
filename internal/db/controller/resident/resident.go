// Package resident provides CRUD operations for the resident registry.
package resident

import (
	"errors"

	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/db/models"
)

var (
	// ErrResidentNotFound is returned when a resident is not found.
	ErrResidentNotFound = errors.New("resident not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List retrieves all residents ordered by last then first name.
func List(db *gorm.DB) ([]models.Resident, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var residents []models.Resident

	result := db.Order("last_name, first_name").Find(&residents)
	if result.Error != nil {
		return nil, result.Error
	}

	return residents, nil
}

// GetByID retrieves a resident by id.
func GetByID(db *gorm.DB, id uint) (*models.Resident, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var r models.Resident

	result := db.First(&r, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrResidentNotFound
		}

		return nil, result.Error
	}

	return &r, nil
}

// Create inserts a new resident and returns the stored row.
func Create(db *gorm.DB, r models.Resident) (*models.Resident, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := db.Create(&r).Error; err != nil {
		return nil, err
	}

	return &r, nil
}

// Update overwrites a resident's fields and returns the fresh row.
func Update(db *gorm.DB, id uint, r models.Resident) (*models.Resident, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	updates := map[string]interface{}{
		"last_name":    r.LastName,
		"first_name":   r.FirstName,
		"middle_name":  r.MiddleName,
		"suffix":       r.Suffix,
		"sex":          r.Sex,
		"birthdate":    r.Birthdate,
		"civil_status": r.CivilStatus,
		"contact_no":   r.ContactNo,
		"address":      r.Address,
	}

	if _, err := GetByID(db, id); err != nil {
		return nil, err
	}

	if err := db.Model(&models.Resident{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return GetByID(db, id)
}
