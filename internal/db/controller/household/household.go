// Package household provides CRUD operations for households and their
// member composition, including the derived member count.
package household

import (
	"errors"

	"gorm.io/gorm"

	"github.com/barangay-is/barangay-is/internal/db/models"
)

var (
	// ErrHouseholdNotFound is returned when a household is not found.
	ErrHouseholdNotFound = errors.New("household not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// WithCount is a household row with its live member count attached.
type WithCount struct {
	models.Household
	MemberCount int64 `json:"member_count"`
}

// MemberRow is a household member joined with the resident's name.
type MemberRow struct {
	ID             uint   `json:"id"`
	ResidentID     uint   `json:"resident_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	RelationToHead string `json:"relation_to_head"`
}

// List retrieves all households with their member counts in a single query.
// Households without members appear with a count of 0; ordering by name keeps
// the listing stable.
func List(db *gorm.DB) ([]WithCount, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []WithCount

	err := db.Model(&models.Household{}).
		Select("households.*, COUNT(household_members.id) AS member_count").
		Joins("LEFT JOIN household_members ON household_members.household_id = households.id").
		Group("households.id").
		Order("households.household_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// GetByID retrieves a single household with its member count.
func GetByID(db *gorm.DB, id uint) (*WithCount, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var row WithCount

	result := db.Model(&models.Household{}).
		Select("households.*, COUNT(household_members.id) AS member_count").
		Joins("LEFT JOIN household_members ON household_members.household_id = households.id").
		Where("households.id = ?", id).
		Group("households.id").
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrHouseholdNotFound
	}

	return &row, nil
}

// Create inserts a new household and returns it with its (zero) member count.
func Create(db *gorm.DB, h models.Household) (*WithCount, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := db.Create(&h).Error; err != nil {
		return nil, err
	}

	return GetByID(db, h.ID)
}

// Update overwrites a household's fields and returns the fresh row.
func Update(db *gorm.DB, id uint, h models.Household) (*WithCount, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if _, err := GetByID(db, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"household_name": h.HouseholdName,
		"address":        h.Address,
		"purok":          h.Purok,
	}

	if err := db.Model(&models.Household{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return GetByID(db, id)
}

// Members lists the members of a household joined with resident names,
// ordered by resident last then first name.
func Members(db *gorm.DB, householdID uint) ([]MemberRow, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []MemberRow

	err := db.Table("household_members").
		Select("household_members.id, residents.id AS resident_id, residents.first_name, residents.last_name, household_members.relation_to_head").
		Joins("JOIN residents ON residents.id = household_members.resident_id").
		Where("household_members.household_id = ?", householdID).
		Order("residents.last_name, residents.first_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// AddMember links a resident to a household and returns the joined row.
func AddMember(db *gorm.DB, householdID, residentID uint, relation string) (*MemberRow, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	m := models.HouseholdMember{
		HouseholdID:    householdID,
		ResidentID:     residentID,
		RelationToHead: relation,
	}

	if err := db.Create(&m).Error; err != nil {
		return nil, err
	}

	var row MemberRow

	err := db.Table("household_members").
		Select("household_members.id, residents.id AS resident_id, residents.first_name, residents.last_name, household_members.relation_to_head").
		Joins("JOIN residents ON residents.id = household_members.resident_id").
		Where("household_members.id = ?", m.ID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &row, nil
}
