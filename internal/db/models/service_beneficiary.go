package models

import "time"

// ServiceBeneficiary links a resident to a community service they received.
type ServiceBeneficiary struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ServiceID  uint      `gorm:"not null;index" json:"service_id"`
	ResidentID uint      `gorm:"not null;index" json:"resident_id"`
	Notes      string    `gorm:"size:255" json:"notes"`
	CreatedAt  time.Time `json:"created_at"`

	Service  Service  `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"-"`
	Resident Resident `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the database table name for the ServiceBeneficiary model.
func (ServiceBeneficiary) TableName() string {
	return "service_beneficiaries"
}
