package repository

import (
	"errors"

	"biolinker-backend/internal/database/models"
	apperrors "biolinker-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LinkRepository handles database operations for links. It is the sole
// authority for position consistency: positions are assigned on insert and
// rewritten only by Reorder, both under a row lock on the owning profile so
// concurrent writers against the same profile serialize.
type LinkRepository struct {
	db *gorm.DB
}

// Ensure LinkRepository implements LinkRepositoryInterface
var _ LinkRepositoryInterface = (*LinkRepository)(nil)

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// lockProfile takes a FOR UPDATE row lock on the owning profile inside tx.
// Every write path goes through this, which is what makes count-then-insert
// and the reorder batch safe under concurrency.
func lockProfile(tx *gorm.DB, profileID uint) error {
	var profile models.Profile
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&profile, "id = ?", profileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrProfileNotFound
	}
	return err
}

// GetByProfileID retrieves all links of a profile ordered by position.
// The id tiebreak keeps relative order stable when deletes leave gaps.
func (r *LinkRepository) GetByProfileID(profileID uint) ([]models.Link, error) {
	links := []models.Link{}
	if err := r.db.Where("profile_id = ?", profileID).
		Order("position ASC, id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// GetByID retrieves a link by ID
func (r *LinkRepository) GetByID(id uint) (*models.Link, error) {
	var link models.Link
	if err := r.db.First(&link, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

// Create appends a new link at the end of its profile's sequence. The count
// and the insert run in one transaction behind the profile row lock, so two
// concurrent creates cannot be assigned the same position.
func (r *LinkRepository) Create(link *models.Link) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockProfile(tx, link.ProfileID); err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&models.Link{}).
			Where("profile_id = ?", link.ProfileID).
			Count(&count).Error; err != nil {
			return err
		}
		link.Position = int(count)
		return tx.Create(link).Error
	})
}

// Update persists the mutable content fields of a link. Position is
// deliberately excluded; it changes only through Reorder.
func (r *LinkRepository) Update(link *models.Link) error {
	result := r.db.Model(&models.Link{}).
		Where("id = ? AND profile_id = ?", link.ID, link.ProfileID).
		Select("title", "url", "icon", "is_visible").
		Updates(link)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrLinkNotFound
	}
	return nil
}

// Delete removes a link by ID, scoped to the owning profile. Positions of
// the remaining links are left untouched; gaps persist until the next
// reorder normalizes them.
func (r *LinkRepository) Delete(profileID, id uint) error {
	result := r.db.Where("id = ? AND profile_id = ?", id, profileID).
		Delete(&models.Link{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrLinkNotFound
	}
	return nil
}

// Reorder assigns position = index for every id in the given order, in one
// atomic transaction, then returns the freshly persisted sequence. Each
// UPDATE is scoped by profile_id, so ids belonging to another profile are
// never renumbered regardless of what the caller sends.
func (r *LinkRepository) Reorder(profileID uint, ids []uint) ([]models.Link, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockProfile(tx, profileID); err != nil {
			return err
		}
		for i, id := range ids {
			if err := tx.Model(&models.Link{}).
				Where("id = ? AND profile_id = ?", id, profileID).
				Update("position", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByProfileID(profileID)
}
