package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"biolinker-backend/internal/database/models"
	apperrors "biolinker-backend/internal/errors"
	"biolinker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// ProfileService handles business logic for profiles and the public page
type ProfileService struct {
	profileRepo repository.ProfileRepositoryInterface
	linkRepo    repository.LinkRepositoryInterface
	cache       PublicPageCache
	validator   *validator.Validate
}

// Ensure ProfileService implements ProfileServiceInterface
var _ ProfileServiceInterface = (*ProfileService)(nil)

// NewProfileService creates a new profile service. cache may be nil.
func NewProfileService(profileRepo repository.ProfileRepositoryInterface, linkRepo repository.LinkRepositoryInterface, cache PublicPageCache, validator *validator.Validate) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		linkRepo:    linkRepo,
		cache:       cache,
		validator:   validator,
	}
}

// CreateProfileRequest represents the payload for creating a profile
type CreateProfileRequest struct {
	Username        string  `json:"username" validate:"required,min=3,max=30"`
	DisplayName     string  `json:"display_name" validate:"max=100"`
	AvatarURL       string  `json:"avatar_url" validate:"omitempty,url,max=2000"`
	ShowUsername    *bool   `json:"show_username"`
	Bio             string  `json:"bio" validate:"max=500"`
	Theme           string  `json:"theme" validate:"omitempty,oneof=default dark custom"`
	BackgroundColor *string `json:"background_color" validate:"omitempty,max=100"`
	TextColor       *string `json:"text_color" validate:"omitempty,max=100"`
	ButtonColor     *string `json:"button_color" validate:"omitempty,max=100"`
	ButtonTextColor *string `json:"button_text_color" validate:"omitempty,max=100"`
	Font            string  `json:"font" validate:"max=50"`
}

// UpdateProfileRequest represents a partial profile update. The dashboard
// disables username edits, but the store still re-checks uniqueness when
// one is supplied.
type UpdateProfileRequest struct {
	Username        *string `json:"username" validate:"omitempty,min=3,max=30"`
	DisplayName     *string `json:"display_name" validate:"omitempty,max=100"`
	AvatarURL       *string `json:"avatar_url" validate:"omitempty,url,max=2000"`
	ShowUsername    *bool   `json:"show_username"`
	Bio             *string `json:"bio" validate:"omitempty,max=500"`
	Theme           *string `json:"theme" validate:"omitempty,oneof=default dark custom"`
	BackgroundColor *string `json:"background_color" validate:"omitempty,max=100"`
	TextColor       *string `json:"text_color" validate:"omitempty,max=100"`
	ButtonColor     *string `json:"button_color" validate:"omitempty,max=100"`
	ButtonTextColor *string `json:"button_text_color" validate:"omitempty,max=100"`
	Font            *string `json:"font" validate:"omitempty,max=50"`
}

// ProfileResponse represents a profile in API responses
type ProfileResponse struct {
	ID              uint   `json:"id"`
	UserID          uint   `json:"user_id"`
	Username        string `json:"username"`
	DisplayName     string `json:"display_name"`
	AvatarURL       string `json:"avatar_url"`
	ShowUsername    bool   `json:"show_username"`
	Bio             string `json:"bio"`
	Theme           string `json:"theme"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	ButtonColor     string `json:"button_color"`
	ButtonTextColor string `json:"button_text_color"`
	Font            string `json:"font"`
}

// PublicProfileResponse is the payload of the public page endpoint:
// the profile plus its visible links only.
type PublicProfileResponse struct {
	Profile ProfileResponse `json:"profile"`
	Links   []LinkResponse  `json:"links"`
}

// CreateProfile validates and creates the caller's profile (one per user)
func (s *ProfileService) CreateProfile(userID uint, req *CreateProfileRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fieldValidationError(err)
	}

	// One profile per user
	if existing, err := s.profileRepo.GetByUserID(userID); err == nil && existing != nil {
		return nil, apperrors.ErrProfileExists
	}

	// Username uniqueness pre-check; the unique index is the backstop
	if taken, err := s.profileRepo.GetByUsername(req.Username); err == nil && taken != nil {
		return nil, apperrors.ErrUsernameTaken
	}

	profile := &models.Profile{
		UserID:          userID,
		Username:        req.Username,
		DisplayName:     req.DisplayName,
		AvatarURL:       req.AvatarURL,
		ShowUsername:    true,
		Bio:             req.Bio,
		Theme:           models.ThemeDefault,
		BackgroundColor: "#ffffff",
		TextColor:       "#000000",
		ButtonColor:     "#000000",
		ButtonTextColor: "#ffffff",
		Font:            "Inter",
	}
	if req.ShowUsername != nil {
		profile.ShowUsername = *req.ShowUsername
	}
	if req.Theme != "" {
		profile.Theme = req.Theme
	}
	if req.BackgroundColor != nil {
		profile.BackgroundColor = *req.BackgroundColor
	}
	if req.TextColor != nil {
		profile.TextColor = *req.TextColor
	}
	if req.ButtonColor != nil {
		profile.ButtonColor = *req.ButtonColor
	}
	if req.ButtonTextColor != nil {
		profile.ButtonTextColor = *req.ButtonTextColor
	}
	if req.Font != "" {
		profile.Font = req.Font
	}

	if err := s.profileRepo.Create(profile); err != nil {
		return nil, err
	}

	s.invalidatePublicPage(profile.Username)

	res := toProfileResponse(profile)
	return &res, nil
}

// GetProfileByUserID returns the profile owned by the given user
func (s *ProfileService) GetProfileByUserID(userID uint) (*ProfileResponse, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	res := toProfileResponse(profile)
	return &res, nil
}

// UpdateProfile applies the given fields to the caller's profile
func (s *ProfileService) UpdateProfile(userID uint, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fieldValidationError(err)
	}

	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	oldUsername := profile.Username

	if req.Username != nil && *req.Username != profile.Username {
		if taken, err := s.profileRepo.GetByUsername(*req.Username); err == nil && taken != nil && taken.UserID != userID {
			return nil, apperrors.ErrUsernameTaken
		}
		profile.Username = *req.Username
	}
	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}
	if req.ShowUsername != nil {
		profile.ShowUsername = *req.ShowUsername
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Theme != nil {
		profile.Theme = *req.Theme
	}
	if req.BackgroundColor != nil {
		profile.BackgroundColor = *req.BackgroundColor
	}
	if req.TextColor != nil {
		profile.TextColor = *req.TextColor
	}
	if req.ButtonColor != nil {
		profile.ButtonColor = *req.ButtonColor
	}
	if req.ButtonTextColor != nil {
		profile.ButtonTextColor = *req.ButtonTextColor
	}
	if req.Font != nil {
		profile.Font = *req.Font
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}

	s.invalidatePublicPage(oldUsername)
	if profile.Username != oldUsername {
		s.invalidatePublicPage(profile.Username)
	}

	res := toProfileResponse(profile)
	return &res, nil
}

// GetPublicProfile returns the public page payload for a username: the
// profile and its visible links, cached read-through when a cache is wired.
func (s *ProfileService) GetPublicProfile(username string) (*PublicProfileResponse, error) {
	if s.cache != nil {
		if payload, ok := s.cache.Get(username); ok {
			var cached PublicProfileResponse
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
			// Corrupt cache entries are dropped and rebuilt from the DB
			logrus.WithField("username", username).Warn("dropping unreadable public page cache entry")
			s.cache.Invalidate(username)
		}
	}

	profile, err := s.profileRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	links, err := s.linkRepo.GetByProfileID(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load links for public page: %w", err)
	}

	visible := make([]LinkResponse, 0, len(links))
	for i := range links {
		if links[i].IsVisible {
			visible = append(visible, toLinkResponse(&links[i]))
		}
	}

	result := &PublicProfileResponse{
		Profile: toProfileResponse(profile),
		Links:   visible,
	}
	if s.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			s.cache.Set(username, payload)
		}
	}
	return result, nil
}

func (s *ProfileService) invalidatePublicPage(username string) {
	if s.cache != nil {
		s.cache.Invalidate(username)
	}
}

func toProfileResponse(p *models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		Username:        p.Username,
		DisplayName:     p.DisplayName,
		AvatarURL:       p.AvatarURL,
		ShowUsername:    p.ShowUsername,
		Bio:             p.Bio,
		Theme:           p.Theme,
		BackgroundColor: p.BackgroundColor,
		TextColor:       p.TextColor,
		ButtonColor:     p.ButtonColor,
		ButtonTextColor: p.ButtonTextColor,
		Font:            p.Font,
	}
}

// fieldValidationError converts a validator error into the API's typed
// ValidationError carrying the offending field's JSON-ish name.
func fieldValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return apperrors.NewValidationError(strings.ToLower(fe.Field()), fmt.Sprintf("failed %q validation", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}
