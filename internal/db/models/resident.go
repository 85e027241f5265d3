// Package models contains database model definitions.
package models

import "time"

// Resident represents a registered barangay resident.
// Dates are stored as ISO "YYYY-MM-DD" strings as submitted by clients.
type Resident struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	LastName   string `gorm:"size:100;not null" json:"last_name"`
	FirstName  string `gorm:"size:100;not null" json:"first_name"`
	MiddleName string `gorm:"size:100" json:"middle_name"`
	Suffix     string `gorm:"size:20" json:"suffix"`
	// Sex is "Male" or "Female" as submitted; required on create.
	Sex         string    `gorm:"size:10;not null" json:"sex"`
	Birthdate   string    `gorm:"size:10" json:"birthdate"`
	CivilStatus string    `gorm:"size:30" json:"civil_status"`
	ContactNo   string    `gorm:"size:30" json:"contact_no"`
	Address     string    `gorm:"size:255" json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Resident model.
func (Resident) TableName() string {
	return "residents"
}
