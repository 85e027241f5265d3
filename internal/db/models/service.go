package models

import "time"

// Service represents a community service or program (feeding program,
// medical mission, ...). The beneficiary count is derived at query time.
type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ServiceName string    `gorm:"size:255;not null" json:"service_name"`
	Description string    `gorm:"type:text" json:"description"`
	ServiceDate string    `gorm:"size:10" json:"service_date"`
	Location    string    `gorm:"size:255" json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Service model.
func (Service) TableName() string {
	return "services"
}
