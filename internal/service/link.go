package service

import (
	"biolinker-backend/internal/database/models"
	apperrors "biolinker-backend/internal/errors"
	"biolinker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// LinkService handles business logic for a profile's ordered link list.
// Every operation is scoped to the caller's profile ID, which the handlers
// resolve from the session before calling in.
type LinkService struct {
	linkRepo    repository.LinkRepositoryInterface
	profileRepo repository.ProfileRepositoryInterface
	cache       PublicPageCache
	validator   *validator.Validate
}

// Ensure LinkService implements LinkServiceInterface
var _ LinkServiceInterface = (*LinkService)(nil)

// NewLinkService creates a new link service. cache may be nil.
func NewLinkService(linkRepo repository.LinkRepositoryInterface, profileRepo repository.ProfileRepositoryInterface, cache PublicPageCache, validator *validator.Validate) *LinkService {
	return &LinkService{
		linkRepo:    linkRepo,
		profileRepo: profileRepo,
		cache:       cache,
		validator:   validator,
	}
}

// LinkResponse represents a link in API responses. The position is exposed
// as "order" to match what the dashboard and public page consume.
type LinkResponse struct {
	ID        uint   `json:"id"`
	ProfileID uint   `json:"profile_id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Icon      string `json:"icon,omitempty"`
	Order     int    `json:"order"`
	IsVisible bool   `json:"is_visible"`
}

// CreateLinkRequest represents the payload for creating a link.
// Position is never client-supplied; the store appends at the end.
type CreateLinkRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=100"`
	URL       string `json:"url" validate:"required,url,max=2000"`
	Icon      string `json:"icon" validate:"max=50"`
	IsVisible *bool  `json:"is_visible"`
}

// UpdateLinkRequest represents a partial link update. Position is absent on
// purpose: ordering changes go through ReorderLinks only.
type UpdateLinkRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=100"`
	URL       *string `json:"url" validate:"omitempty,url,max=2000"`
	Icon      *string `json:"icon" validate:"omitempty,max=50"`
	IsVisible *bool   `json:"is_visible"`
}

// ListLinks returns the profile's links ascending by position
func (s *LinkService) ListLinks(profileID uint) ([]LinkResponse, error) {
	links, err := s.linkRepo.GetByProfileID(profileID)
	if err != nil {
		return nil, err
	}
	return toLinkResponses(links), nil
}

// CreateLink validates and appends a new link to the profile's sequence
func (s *LinkService) CreateLink(profileID uint, req *CreateLinkRequest) (*LinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fieldValidationError(err)
	}

	link := &models.Link{
		ProfileID: profileID,
		Title:     req.Title,
		URL:       req.URL,
		Icon:      req.Icon,
		IsVisible: true,
	}
	if req.IsVisible != nil {
		link.IsVisible = *req.IsVisible
	}

	if err := s.linkRepo.Create(link); err != nil {
		return nil, err
	}

	s.invalidatePublicPage(profileID)

	res := toLinkResponse(link)
	return &res, nil
}

// UpdateLink applies the given content fields to a link owned by the given
// profile. A link belonging to another profile answers as not found.
func (s *LinkService) UpdateLink(profileID, linkID uint, req *UpdateLinkRequest) (*LinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fieldValidationError(err)
	}

	link, err := s.linkRepo.GetByID(linkID)
	if err != nil {
		return nil, err
	}
	if link.ProfileID != profileID {
		return nil, apperrors.ErrLinkNotFound
	}

	if req.Title != nil {
		link.Title = *req.Title
	}
	if req.URL != nil {
		link.URL = *req.URL
	}
	if req.Icon != nil {
		link.Icon = *req.Icon
	}
	if req.IsVisible != nil {
		link.IsVisible = *req.IsVisible
	}

	if err := s.linkRepo.Update(link); err != nil {
		return nil, err
	}

	s.invalidatePublicPage(profileID)

	res := toLinkResponse(link)
	return &res, nil
}

// DeleteLink removes a link owned by the given profile. Positions of the
// remaining links are not compacted; see ReorderLinks.
func (s *LinkService) DeleteLink(profileID, linkID uint) error {
	if err := s.linkRepo.Delete(profileID, linkID); err != nil {
		return err
	}
	s.invalidatePublicPage(profileID)
	return nil
}

// ReorderLinks applies the caller-supplied permutation: the link at ids[i]
// receives position i. The id list must be exactly the profile's current
// link set; anything else (missing, unknown, duplicate or foreign ids) is
// rejected before the store is touched.
func (s *LinkService) ReorderLinks(profileID uint, ids []uint) ([]LinkResponse, error) {
	current, err := s.linkRepo.GetByProfileID(profileID)
	if err != nil {
		return nil, err
	}

	if len(ids) != len(current) {
		return nil, apperrors.ErrReorderSetMismatch
	}
	owned := make(map[uint]bool, len(current))
	for i := range current {
		owned[current[i].ID] = true
	}
	for _, id := range ids {
		if !owned[id] {
			return nil, apperrors.ErrReorderSetMismatch
		}
		delete(owned, id) // catches duplicates in the input
	}

	reordered, err := s.linkRepo.Reorder(profileID, ids)
	if err != nil {
		return nil, err
	}

	s.invalidatePublicPage(profileID)

	return toLinkResponses(reordered), nil
}

// invalidatePublicPage drops the cached public page of the profile's
// username after any mutation that changes what the page renders.
func (s *LinkService) invalidatePublicPage(profileID uint) {
	if s.cache == nil {
		return
	}
	if profile, err := s.profileRepo.GetByID(profileID); err == nil {
		s.cache.Invalidate(profile.Username)
	}
}

func toLinkResponse(l *models.Link) LinkResponse {
	return LinkResponse{
		ID:        l.ID,
		ProfileID: l.ProfileID,
		Title:     l.Title,
		URL:       l.URL,
		Icon:      l.Icon,
		Order:     l.Position,
		IsVisible: l.IsVisible,
	}
}

func toLinkResponses(links []models.Link) []LinkResponse {
	out := make([]LinkResponse, 0, len(links))
	for i := range links {
		out = append(out, toLinkResponse(&links[i]))
	}
	return out
}
