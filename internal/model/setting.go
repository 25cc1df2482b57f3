package model

import "time"

// Setting keys managed through the admin panel
const (
	SettingSiteTitle      = "site_title"
	SettingContactPhone   = "contact_phone"
	SettingContactEmail   = "contact_email"
	SettingContactAddress = "contact_address"
)

// Setting represents a keyed bilingual site setting
type Setting struct {
	ID        int       `json:"id" db:"id"`
	Key       string    `json:"setting_key" db:"setting_key"`
	ValueEN   *string   `json:"setting_value_en" db:"setting_value_en"`
	ValueAM   *string   `json:"setting_value_am" db:"setting_value_am"`
	Type      string    `json:"setting_type" db:"setting_type"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SettingsInput is the payload for updating the site settings
type SettingsInput struct {
	SiteTitleEN      string `json:"site_title_en" binding:"required,max=255"`
	SiteTitleAM      string `json:"site_title_am" binding:"omitempty,max=255"`
	ContactPhone     string `json:"contact_phone" binding:"omitempty,max=50"`
	ContactEmail     string `json:"contact_email" binding:"omitempty,email"`
	ContactAddressEN string `json:"contact_address_en" binding:"omitempty,max=255"`
	ContactAddressAM string `json:"contact_address_am" binding:"omitempty,max=255"`
}
