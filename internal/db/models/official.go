package models

import "time"

const (
	// PositionCaptain is the position whose holder conventionally carries the
	// captain flag.
	PositionCaptain = "Punong Barangay"
	// PositionSecretary is the position whose holder conventionally carries
	// the secretary flag.
	PositionSecretary = "Barangay Secretary"
)

// Positions is the enumerated set of official positions accepted on write.
var Positions = []string{
	PositionCaptain,
	"Barangay Kagawad",
	PositionSecretary,
	"Barangay Treasurer",
	"SK Chairperson",
	"Barangay Tanod",
	"Lupon Member",
}

// Official represents a member of the barangay official roster.
//
// IsCaptain and IsSecretary are independently settable flags. They default
// from the position on create/update when the caller does not supply them,
// but they are never forced: the data model tolerates zero or multiple
// officials carrying the same flag. Consumers needing "the" captain or
// secretary must use the resolution fallback in the official controller.
type Official struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// FullName is the official's display name.
	FullName string `gorm:"size:255;not null" json:"full_name"`
	// Position is one of the Positions values.
	Position string `gorm:"size:100;not null" json:"position"`
	// OrderNo is the display/protocol rank; it also breaks ties during
	// captain/secretary resolution.
	OrderNo int `gorm:"not null;default:0" json:"order_no"`
	// IsCaptain marks the official as barangay captain.
	IsCaptain bool `json:"is_captain"`
	// IsSecretary marks the official as barangay secretary.
	IsSecretary bool `json:"is_secretary"`
	// SignaturePath is the public URL of the uploaded signature image, nil when absent.
	SignaturePath *string `gorm:"size:255" json:"signature_path"`
	// ProfileImg is the public URL of the uploaded profile picture, nil when absent.
	ProfileImg *string   `gorm:"size:255" json:"profile_img"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Official model.
func (Official) TableName() string {
	return "officials"
}
