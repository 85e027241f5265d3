// Package service provides CRUD operations for community services and
// their beneficiaries, including the derived beneficiary count.
package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/db/models"
)

var (
	// ErrServiceNotFound is returned when a service is not found.
	ErrServiceNotFound = errors.New("service not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// WithCount is a service row with its live beneficiary count attached.
type WithCount struct {
	models.Service
	BeneficiaryCount int64 `json:"beneficiary_count"`
}

// BeneficiaryRow is a beneficiary joined with the resident's name.
type BeneficiaryRow struct {
	ID         uint   `json:"id"`
	ResidentID uint   `json:"resident_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Notes      string `json:"notes"`
}

// List retrieves all services with beneficiary counts in a single query,
// newest service date first with the name as tiebreaker.
func List(db *gorm.DB) ([]WithCount, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []WithCount

	err := db.Model(&models.Service{}).
		Select("services.*, COUNT(service_beneficiaries.id) AS beneficiary_count").
		Joins("LEFT JOIN service_beneficiaries ON service_beneficiaries.service_id = services.id").
		Group("services.id").
		Order("services.service_date DESC, services.service_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// GetByID retrieves a single service with its beneficiary count.
func GetByID(db *gorm.DB, id uint) (*WithCount, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var row WithCount

	result := db.Model(&models.Service{}).
		Select("services.*, COUNT(service_beneficiaries.id) AS beneficiary_count").
		Joins("LEFT JOIN service_beneficiaries ON service_beneficiaries.service_id = services.id").
		Where("services.id = ?", id).
		Group("services.id").
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrServiceNotFound
	}

	return &row, nil
}

// Create inserts a new service and returns it with its (zero) count.
func Create(db *gorm.DB, s models.Service) (*WithCount, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := db.Create(&s).Error; err != nil {
		return nil, err
	}

	return GetByID(db, s.ID)
}

// Update overwrites a service's fields and returns the fresh row.
func Update(db *gorm.DB, id uint, s models.Service) (*WithCount, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if _, err := GetByID(db, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"service_name": s.ServiceName,
		"description":  s.Description,
		"service_date": s.ServiceDate,
		"location":     s.Location,
	}

	if err := db.Model(&models.Service{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return GetByID(db, id)
}

// Beneficiaries lists the beneficiaries of a service joined with resident
// names, ordered by resident last then first name.
func Beneficiaries(db *gorm.DB, serviceID uint) ([]BeneficiaryRow, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []BeneficiaryRow

	err := db.Table("service_beneficiaries").
		Select("service_beneficiaries.id, residents.id AS resident_id, residents.first_name, residents.last_name, service_beneficiaries.notes").
		Joins("JOIN residents ON residents.id = service_beneficiaries.resident_id").
		Where("service_beneficiaries.service_id = ?", serviceID).
		Order("residents.last_name, residents.first_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// AddBeneficiary links a resident to a service and returns the joined row.
func AddBeneficiary(db *gorm.DB, serviceID, residentID uint, notes string) (*BeneficiaryRow, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	b := models.ServiceBeneficiary{
		ServiceID:  serviceID,
		ResidentID: residentID,
		Notes:      notes,
	}

	if err := db.Create(&b).Error; err != nil {
		return nil, err
	}

	var row BeneficiaryRow

	err := db.Table("service_beneficiaries").
		Select("service_beneficiaries.id, residents.id AS resident_id, residents.first_name, residents.last_name, service_beneficiaries.notes").
		Joins("JOIN residents ON residents.id = service_beneficiaries.resident_id").
		Where("service_beneficiaries.id = ?", b.ID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &row, nil
}
