package models

import "time"

// IncidentStatusOpen is the default status of a newly filed incident.
const IncidentStatusOpen = "Open"

// Incident represents a blotter entry. Complainant and respondent are
// optional references into the resident registry.
type Incident struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	IncidentDate string `gorm:"size:10;not null" json:"incident_date"`
	IncidentType string `gorm:"size:100;not null" json:"incident_type"`
	Location     string `gorm:"size:255" json:"location"`
	Description  string `gorm:"type:text" json:"description"`
	// ComplainantID and RespondentID are nullable resident references.
	ComplainantID *uint     `json:"complainant_id"`
	RespondentID  *uint     `json:"respondent_id"`
	Status        string    `gorm:"size:50;not null;default:'Open'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Incident model.
func (Incident) TableName() string {
	return "incidents"
}
