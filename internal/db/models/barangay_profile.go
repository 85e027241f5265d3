package models

// BarangayProfile holds the identity of the barangay used on certificates
// and IDs. At most one row exists, keyed by SingletonID.
type BarangayProfile struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	BarangayName string `gorm:"size:255" json:"barangay_name"`
	Municipality string `gorm:"size:255" json:"municipality"`
	Province     string `gorm:"size:255" json:"province"`
	PlaceIssued  string `gorm:"size:255" json:"place_issued"`
}

// TableName specifies the database table name for the BarangayProfile model.
func (BarangayProfile) TableName() string {
	return "barangay_profile"
}
