package repository

import (
	"biolinker-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user account operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// ProfileRepositoryInterface defines the interface for profile operations
type ProfileRepositoryInterface interface {
	Create(profile *models.Profile) error
	GetByID(id uint) (*models.Profile, error)
	GetByUserID(userID uint) (*models.Profile, error)
	GetByUsername(username string) (*models.Profile, error)
	Update(profile *models.Profile) error
}

// LinkRepositoryInterface defines the interface for link operations.
// Mutating calls take the owning profile ID so the repository itself scopes
// every write; a link belonging to another profile behaves as missing.
type LinkRepositoryInterface interface {
	Create(link *models.Link) error
	GetByID(id uint) (*models.Link, error)
	GetByProfileID(profileID uint) ([]models.Link, error)
	Update(link *models.Link) error
	Delete(profileID, id uint) error
	Reorder(profileID uint, ids []uint) ([]models.Link, error)
}
