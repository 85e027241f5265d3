// Package official provides CRUD operations for the official roster and the
// shared captain/secretary resolution fallback.
//
// The is_captain and is_secretary flags are independently settable and never
// forced from the position, so the roster may hold zero or several flagged
// rows at any time. Every consumer that needs "the" captain or secretary must
// go through Captain/Secretary here so all screens agree on the answer.
package official

import (
	"errors"

	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/db/models"
)

var (
	// ErrOfficialNotFound is returned when an official is not found.
	ErrOfficialNotFound = errors.New("official not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// FileRefs carries replacement upload paths for an official's file fields.
// A nil field keeps the stored value.
type FileRefs struct {
	SignaturePath *string
	ProfileImg    *string
}

// List retrieves the roster ordered by rank, position, then name.
func List(db *gorm.DB) ([]models.Official, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var officials []models.Official

	result := db.Order("order_no, position, full_name").Find(&officials)
	if result.Error != nil {
		return nil, result.Error
	}

	return officials, nil
}

// GetByID retrieves an official by id.
func GetByID(db *gorm.DB, id uint) (*models.Official, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var o models.Official

	result := db.First(&o, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOfficialNotFound
		}

		return nil, result.Error
	}

	return &o, nil
}

// Create inserts a new official and returns the stored row.
func Create(db *gorm.DB, o models.Official) (*models.Official, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := db.Create(&o).Error; err != nil {
		return nil, err
	}

	return &o, nil
}

// Update overwrites an official's scalar fields; file columns are written
// only when a replacement upload was supplied. Superseded file paths are
// returned for retirement by the caller.
func Update(db *gorm.DB, id uint, o models.Official, files FileRefs) (*models.Official, []string, error) {
	if db == nil {
		return nil, nil, ErrDBNil
	}

	current, err := GetByID(db, id)
	if err != nil {
		return nil, nil, err
	}

	var stale []string

	updates := map[string]interface{}{
		"full_name":    o.FullName,
		"position":     o.Position,
		"order_no":     o.OrderNo,
		"is_captain":   o.IsCaptain,
		"is_secretary": o.IsSecretary,
	}

	if files.SignaturePath != nil {
		updates["signature_path"] = *files.SignaturePath

		if current.SignaturePath != nil && *current.SignaturePath != *files.SignaturePath {
			stale = append(stale, *current.SignaturePath)
		}
	}

	if files.ProfileImg != nil {
		updates["profile_img"] = *files.ProfileImg

		if current.ProfileImg != nil && *current.ProfileImg != *files.ProfileImg {
			stale = append(stale, *current.ProfileImg)
		}
	}

	if err := db.Model(&models.Official{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, nil, err
	}

	fresh, err := GetByID(db, id)
	if err != nil {
		return nil, nil, err
	}

	return fresh, stale, nil
}

// Delete removes an official and returns the stored file paths so the caller
// can retire the orphaned uploads.
func Delete(db *gorm.DB, id uint) ([]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	current, err := GetByID(db, id)
	if err != nil {
		return nil, err
	}

	var orphaned []string

	if current.SignaturePath != nil && *current.SignaturePath != "" {
		orphaned = append(orphaned, *current.SignaturePath)
	}

	if current.ProfileImg != nil && *current.ProfileImg != "" {
		orphaned = append(orphaned, *current.ProfileImg)
	}

	if err := db.Delete(&models.Official{}, id).Error; err != nil {
		return nil, err
	}

	return orphaned, nil
}

// Captain resolves the barangay captain: prefer the flagged row, fall back
// to the "Punong Barangay" position, ties broken by lowest order_no then id.
func Captain(db *gorm.DB) (*models.Official, error) {
	return resolveRole(db, "is_captain", models.PositionCaptain)
}

// Secretary resolves the barangay secretary with the same fallback chain as
// Captain, against the is_secretary flag and the "Barangay Secretary" position.
func Secretary(db *gorm.DB) (*models.Official, error) {
	return resolveRole(db, "is_secretary", models.PositionSecretary)
}

func resolveRole(db *gorm.DB, flagColumn, position string) (*models.Official, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var o models.Official

	result := db.Where(flagColumn+" = ?", true).
		Order("order_no, id").
		First(&o)
	if result.Error == nil {
		return &o, nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	result = db.Where("position = ?", position).
		Order("order_no, id").
		First(&o)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOfficialNotFound
		}

		return nil, result.Error
	}

	return &o, nil
}
