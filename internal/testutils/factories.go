package testutils

import (
	"fmt"

	"biolinker-backend/internal/database/models"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	return &models.User{
		Email:        "test@example.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // bcrypt of "password"
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test Profile owned by the given user
func (f *ProfileFactory) Create(userID uint) *models.Profile {
	return &models.Profile{
		UserID:          userID,
		Username:        fmt.Sprintf("user%d", userID),
		DisplayName:     "Test User",
		ShowUsername:    true,
		Bio:             "A test profile",
		Theme:           models.ThemeDefault,
		BackgroundColor: "#ffffff",
		TextColor:       "#000000",
		ButtonColor:     "#000000",
		ButtonTextColor: "#ffffff",
		Font:            "Inter",
	}
}

// WithUsername sets a custom username for the profile
func (f *ProfileFactory) WithUsername(userID uint, username string) *models.Profile {
	profile := f.Create(userID)
	profile.Username = username
	return profile
}

// LinkFactory provides methods to create test Link data
type LinkFactory struct{}

// NewLinkFactory creates a new LinkFactory
func NewLinkFactory() *LinkFactory {
	return &LinkFactory{}
}

// Create creates a test Link for the given profile with an explicit position
func (f *LinkFactory) Create(profileID uint, title string, position int) *models.Link {
	return &models.Link{
		ProfileID: profileID,
		Title:     title,
		URL:       "https://example.com/" + title,
		Icon:      "Globe",
		Position:  position,
		IsVisible: true,
	}
}
