package models

import "time"

// HouseholdMember links a resident to a household.
type HouseholdMember struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	HouseholdID uint `gorm:"not null;index" json:"household_id"`
	ResidentID  uint `gorm:"not null;index" json:"resident_id"`
	// RelationToHead describes the member's relation to the household head
	// ("Head", "Spouse", "Child", ...). Free-form.
	RelationToHead string    `gorm:"size:100" json:"relation_to_head"`
	CreatedAt      time.Time `json:"created_at"`

	Household Household `gorm:"foreignKey:HouseholdID;constraint:OnDelete:CASCADE" json:"-"`
	Resident  Resident  `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the database table name for the HouseholdMember model.
func (HouseholdMember) TableName() string {
	return "household_members"
}
