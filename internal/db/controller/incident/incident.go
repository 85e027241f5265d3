// Package incident provides CRUD operations for the blotter.
package incident

import (
	"errors"

	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/db/models"
)

var (
	// ErrIncidentNotFound is returned when an incident is not found.
	ErrIncidentNotFound = errors.New("incident not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Row is an incident joined with the complainant and respondent names.
// The name fields are nil when the incident has no such party.
type Row struct {
	models.Incident
	ComplainantFirstName *string `json:"complainant_first_name"`
	ComplainantLastName  *string `json:"complainant_last_name"`
	RespondentFirstName  *string `json:"respondent_first_name"`
	RespondentLastName   *string `json:"respondent_last_name"`
}

// List retrieves all incidents with party names, newest first.
func List(db *gorm.DB) ([]Row, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []Row

	err := db.Table("incidents").
		Select("incidents.*, " +
			"c.first_name AS complainant_first_name, c.last_name AS complainant_last_name, " +
			"r.first_name AS respondent_first_name, r.last_name AS respondent_last_name").
		Joins("LEFT JOIN residents c ON c.id = incidents.complainant_id").
		Joins("LEFT JOIN residents r ON r.id = incidents.respondent_id").
		Order("incidents.incident_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// GetByID retrieves a single incident.
func GetByID(db *gorm.DB, id uint) (*models.Incident, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var i models.Incident

	result := db.First(&i, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrIncidentNotFound
		}

		return nil, result.Error
	}

	return &i, nil
}

// Create inserts a new incident; an empty status defaults to "Open".
func Create(db *gorm.DB, i models.Incident) (*models.Incident, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if i.Status == "" {
		i.Status = models.IncidentStatusOpen
	}

	if err := db.Create(&i).Error; err != nil {
		return nil, err
	}

	return &i, nil
}

// Update overwrites an incident's fields and returns the fresh row.
func Update(db *gorm.DB, id uint, i models.Incident) (*models.Incident, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if _, err := GetByID(db, id); err != nil {
		return nil, err
	}

	if i.Status == "" {
		i.Status = models.IncidentStatusOpen
	}

	updates := map[string]interface{}{
		"incident_date":  i.IncidentDate,
		"incident_type":  i.IncidentType,
		"location":       i.Location,
		"description":    i.Description,
		"complainant_id": i.ComplainantID,
		"respondent_id":  i.RespondentID,
		"status":         i.Status,
	}

	if err := db.Model(&models.Incident{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return GetByID(db, id)
}
