package repository

import (
	"errors"

	"biolinker-backend/internal/database/models"
	apperrors "biolinker-backend/internal/errors"

	"gorm.io/gorm"
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *gorm.DB
}

// Ensure ProfileRepository implements ProfileRepositoryInterface
var _ ProfileRepositoryInterface = (*ProfileRepository)(nil)

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a new profile. The unique indexes on user_id and username
// are the authoritative uniqueness signal; the service pre-checks are only
// for friendlier ordering of error messages and are inherently racy.
func (r *ProfileRepository) Create(profile *models.Profile) error {
	if err := r.db.Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.Profile
			if r.db.First(&existing, "user_id = ?", profile.UserID).Error == nil {
				return apperrors.ErrProfileExists
			}
			return apperrors.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// GetByUserID retrieves the profile owned by the given user
func (r *ProfileRepository) GetByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// GetByUsername retrieves a profile by its exact username (case-sensitive)
func (r *ProfileRepository) GetByUsername(username string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Update persists all profile fields
func (r *ProfileRepository) Update(profile *models.Profile) error {
	if err := r.db.Save(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrUsernameTaken
		}
		return err
	}
	return nil
}
