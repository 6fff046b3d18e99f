package models

// Theme names understood by the dashboard. "custom" unlocks the individual
// color fields; the server stores whatever colors are sent regardless.
const (
	ThemeDefault = "default"
	ThemeDark    = "dark"
	ThemeCustom  = "custom"
)

// Profile is a user's public bio page configuration. Exactly one per user,
// enforced by the unique index on UserID; Username is globally unique.
type Profile struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       uint   `json:"user_id" gorm:"uniqueIndex;not null" validate:"required"`
	Username     string `json:"username" gorm:"uniqueIndex;not null;size:30" validate:"required,min=3,max=30"`
	DisplayName  string `json:"display_name" gorm:"size:100" validate:"max=100"`
	AvatarURL    string `json:"avatar_url" gorm:"size:2000" validate:"omitempty,url,max=2000"`
	ShowUsername bool   `json:"show_username" gorm:"not null"`
	Bio          string `json:"bio" gorm:"size:500" validate:"max=500"`

	// Theme settings
	Theme           string `json:"theme" gorm:"not null;size:20;default:'default'"`
	BackgroundColor string `json:"background_color" gorm:"size:100;default:'#ffffff'"`
	TextColor       string `json:"text_color" gorm:"size:100;default:'#000000'"`
	ButtonColor     string `json:"button_color" gorm:"size:100;default:'#000000'"`
	ButtonTextColor string `json:"button_text_color" gorm:"size:100;default:'#ffffff'"`
	Font            string `json:"font" gorm:"size:50;default:'Inter'"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
