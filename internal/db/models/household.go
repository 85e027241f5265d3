package models

import "time"

// Household groups residents living under one roof.
// The member count is derived at query time, never stored.
type Household struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	HouseholdName string    `gorm:"size:255;not null" json:"household_name"`
	Address       string    `gorm:"size:255;not null" json:"address"`
	Purok         string    `gorm:"size:100" json:"purok"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Household model.
func (Household) TableName() string {
	return "households"
}
