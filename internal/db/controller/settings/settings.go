// Package settings provides read and upsert operations for the singleton
// company settings row.
//
// The row is keyed by the fixed models.SingletonID. Reads on an absent row
// return a fully populated default object, never an error. Writes create the
// row on first use and update it thereafter; file-reference columns are only
// touched when a replacement upload was supplied, and the previously stored
// paths are reported back to the caller for retirement.
package settings

import (
	"errors"

	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

const (
	// DefaultHeaderColor is used when no header color was ever saved.
	DefaultHeaderColor = "#ffffff"
	// DefaultFooterColor is used when no footer color was ever saved.
	DefaultFooterColor = "#ffffff"
	// DefaultMainButtonColor is used when no main button color was ever saved.
	DefaultMainButtonColor = "#ffffff"
	// DefaultSidebarButtonColor is used when no sidebar button color was ever saved.
	DefaultSidebarButtonColor = "#000000"
)

// Defaults returns the settings object served while no row exists.
// Every field is populated; file references are nil.
func Defaults() models.CompanySettings {
	return models.CompanySettings{
		ID:                 models.SingletonID,
		HeaderColor:        DefaultHeaderColor,
		FooterColor:        DefaultFooterColor,
		MainButtonColor:    DefaultMainButtonColor,
		SidebarButtonColor: DefaultSidebarButtonColor,
	}
}

// Fields carries the scalar settings submitted by a client. Empty strings
// fall back to the documented defaults on create; on update they overwrite,
// matching the behavior of the form that always submits every scalar.
type Fields struct {
	CompanyName        string
	Address            string
	HeaderColor        string
	FooterText         string
	FooterColor        string
	MainButtonColor    string
	SidebarButtonColor string
}

// FileRefs carries replacement upload paths. A nil field means "no new
// upload, keep the stored value" — stored references are never cleared
// implicitly.
type FileRefs struct {
	LogoURL *string
	BgImage *string
}

// Get retrieves the settings row, or Defaults() when none exists yet.
func Get(db *gorm.DB) (*models.CompanySettings, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var s models.CompanySettings

	result := db.First(&s, models.SingletonID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			d := Defaults()
			return &d, nil
		}

		return nil, result.Error
	}

	return &s, nil
}

// Save upserts the settings row and returns the fresh row together with the
// stale file paths superseded by this write. A path is reported only when a
// replacement upload was supplied, the old value was set, and it differs from
// the new one; the caller is responsible for the best-effort deletion.
func Save(db *gorm.DB, fields Fields, files FileRefs) (*models.CompanySettings, []string, error) {
	if db == nil {
		return nil, nil, ErrDBNil
	}

	var current models.CompanySettings

	result := db.First(&current, models.SingletonID)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		row := newRow(fields, files)

		if err := db.Create(&row).Error; err != nil {
			// A concurrent writer may have inserted the singleton between our
			// read and create; the fixed key makes this insert lose. Re-read
			// and fall back to the update path.
			if err2 := db.First(&current, models.SingletonID).Error; err2 != nil {
				return nil, nil, err
			}

			return update(db, &current, fields, files)
		}

		return &row, nil, nil
	}

	if result.Error != nil {
		return nil, nil, result.Error
	}

	return update(db, &current, fields, files)
}

func newRow(fields Fields, files FileRefs) models.CompanySettings {
	row := Defaults()
	applyScalars(&row, fields)
	row.LogoURL = files.LogoURL
	row.BgImage = files.BgImage

	return row
}

func update(
	db *gorm.DB,
	current *models.CompanySettings,
	fields Fields,
	files FileRefs,
) (*models.CompanySettings, []string, error) {
	var stale []string

	updates := map[string]interface{}{
		"company_name":         fields.CompanyName,
		"address":              fields.Address,
		"header_color":         defaultString(fields.HeaderColor, DefaultHeaderColor),
		"footer_text":          fields.FooterText,
		"footer_color":         defaultString(fields.FooterColor, DefaultFooterColor),
		"main_button_color":    defaultString(fields.MainButtonColor, DefaultMainButtonColor),
		"sidebar_button_color": defaultString(fields.SidebarButtonColor, DefaultSidebarButtonColor),
	}

	// File columns are written only when a replacement upload exists.
	if files.LogoURL != nil {
		updates["logo_url"] = *files.LogoURL

		if current.LogoURL != nil && *current.LogoURL != *files.LogoURL {
			stale = append(stale, *current.LogoURL)
		}
	}

	if files.BgImage != nil {
		updates["bg_image"] = *files.BgImage

		if current.BgImage != nil && *current.BgImage != *files.BgImage {
			stale = append(stale, *current.BgImage)
		}
	}

	if err := db.Model(&models.CompanySettings{}).
		Where("id = ?", models.SingletonID).
		Updates(updates).Error; err != nil {
		return nil, nil, err
	}

	var fresh models.CompanySettings
	if err := db.First(&fresh, models.SingletonID).Error; err != nil {
		return nil, nil, err
	}

	return &fresh, stale, nil
}

func applyScalars(row *models.CompanySettings, fields Fields) {
	row.CompanyName = fields.CompanyName
	row.Address = fields.Address
	row.FooterText = fields.FooterText
	row.HeaderColor = defaultString(fields.HeaderColor, DefaultHeaderColor)
	row.FooterColor = defaultString(fields.FooterColor, DefaultFooterColor)
	row.MainButtonColor = defaultString(fields.MainButtonColor, DefaultMainButtonColor)
	row.SidebarButtonColor = defaultString(fields.SidebarButtonColor, DefaultSidebarButtonColor)
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}

	return v
}
