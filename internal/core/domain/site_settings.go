package domain

import "time"

// SiteSettings - the appearance and contact configuration managed from the
// back-office. Stored as a single row; public read, admin write.
type SiteSettings struct {
	SiteName        LocalizedText
	LogoURL         string
	ContactEmail    string
	ContactPhone    string
	DefaultLanguage Lang
	UpdatedAt       time.Time
}
