package models

// SingletonID is the fixed primary key of single-row configuration tables.
// The key constraint doubles as the backstop against a concurrent double
// insert: the losing writer falls back to an update.
const SingletonID = 1

// CompanySettings holds the deployment-wide branding configuration.
// At most one row exists, keyed by SingletonID.
type CompanySettings struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CompanyName string `gorm:"size:255" json:"company_name"`
	Address     string `gorm:"size:255" json:"address"`
	HeaderColor string `gorm:"size:20" json:"header_color"`
	FooterText  string `gorm:"size:255" json:"footer_text"`
	FooterColor string `gorm:"size:20" json:"footer_color"`
	// LogoURL and BgImage are public URLs of uploaded assets, nil when absent.
	LogoURL            *string `gorm:"column:logo_url;size:255" json:"logo_url"`
	BgImage            *string `gorm:"size:255" json:"bg_image"`
	MainButtonColor    string  `gorm:"size:20" json:"main_button_color"`
	SidebarButtonColor string  `gorm:"size:20" json:"sidebar_button_color"`
}

// TableName specifies the database table name for the CompanySettings model.
func (CompanySettings) TableName() string {
	return "company_settings"
}
