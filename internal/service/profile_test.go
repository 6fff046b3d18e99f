package service_test

import (
	"encoding/json"
	"testing"

	"biolinker-backend/internal/database/models"
	apperrors "biolinker-backend/internal/errors"
	"biolinker-backend/internal/mocks"
	"biolinker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProfileServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProfileRepo *mocks.MockProfileRepositoryInterface
	mockLinkRepo    *mocks.MockLinkRepositoryInterface
	profileService  *service.ProfileService
	validator       *validator.Validate
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProfileRepo = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.mockLinkRepo = mocks.NewMockLinkRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.profileService = service.NewProfileService(
		suite.mockProfileRepo,
		suite.mockLinkRepo,
		nil,
		suite.validator,
	)
}

func (suite *ProfileServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProfileServiceTestSuite) TestCreateProfile() {
	req := &service.CreateProfileRequest{Username: "alice"}

	suite.mockProfileRepo.EXPECT().GetByUserID(uint(1)).Return(nil, apperrors.ErrProfileNotFound)
	suite.mockProfileRepo.EXPECT().GetByUsername("alice").Return(nil, apperrors.ErrProfileNotFound)
	suite.mockProfileRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Profile) error {
		suite.Equal(uint(1), p.UserID)
		p.ID = 10
		return nil
	})

	res, err := suite.profileService.CreateProfile(1, req)

	suite.NoError(err)
	suite.Equal("alice", res.Username)
	// Theme and appearance defaults
	suite.Equal(models.ThemeDefault, res.Theme)
	suite.True(res.ShowUsername)
	suite.Equal("#ffffff", res.BackgroundColor)
	suite.Equal("#000000", res.TextColor)
	suite.Equal("Inter", res.Font)
}

func (suite *ProfileServiceTestSuite) TestCreateProfileCustomTheme() {
	hide := false
	bg := "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"
	req := &service.CreateProfileRequest{
		Username:        "alice",
		Theme:           models.ThemeCustom,
		ShowUsername:    &hide,
		BackgroundColor: &bg,
	}

	suite.mockProfileRepo.EXPECT().GetByUserID(uint(1)).Return(nil, apperrors.ErrProfileNotFound)
	suite.mockProfileRepo.EXPECT().GetByUsername("alice").Return(nil, apperrors.ErrProfileNotFound)
	suite.mockProfileRepo.EXPECT().Create(gomock.Any()).Return(nil)

	res, err := suite.profileService.CreateProfile(1, req)

	suite.NoError(err)
	suite.Equal(models.ThemeCustom, res.Theme)
	suite.False(res.ShowUsername)
	suite.Equal(bg, res.BackgroundColor)
}

func (suite *ProfileServiceTestSuite) TestCreateProfileAlreadyExists() {
	req := &service.CreateProfileRequest{Username: "alice"}

	suite.mockProfileRepo.EXPECT().GetByUserID(uint(1)).Return(&models.Profile{ID: 10, UserID: 1}, nil)

	_, err := suite.profileService.CreateProfile(1, req)

	suite.ErrorIs(err, apperrors.ErrProfileExists)
}

func (suite *ProfileServiceTestSuite) TestCreateProfileUsernameTaken() {
	req := &service.CreateProfileRequest{Username: "alice"}

	suite.mockProfileRepo.EXPECT().GetByUserID(uint(1)).Return(nil, apperrors.ErrProfileNotFound)
	suite.mockProfileRepo.EXPECT().GetByUsername("alice").Return(&models.Profile{ID: 99, Username: "alice"}, nil)

	_, err := suite.profileService.CreateProfile(1, req)

	suite.ErrorIs(err, apperrors.ErrUsernameTaken)
	var existsErr *apperrors.AlreadyExistsError
	suite.ErrorAs(err, &existsErr)
	suite.Equal("username", existsErr.Field)
}

func (suite *ProfileServiceTestSuite) TestCreateProfileUsernameTooShort() {
	req := &service.CreateProfileRequest{Username: "ab"}

	_, err := suite.profileService.CreateProfile(1, req)

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
	var verr *apperrors.ValidationError
	suite.ErrorAs(err, &verr)
	suite.Equal("username", verr.Field)
}

func (suite *ProfileServiceTestSuite) TestGetProfileByUserID() {
	suite.mockProfileRepo.EXPECT().GetByUserID(uint(1)).Return(&models.Profile{ID: 10, UserID: 1, Username: "alice"}, nil)

	res, err := suite.profileService.GetProfileByUserID(1)

	suite.NoError(err)
	suite.Equal("alice", res.Username)
}

func (suite *ProfileServiceTestSuite) TestGetProfileByUserIDNotFound() {
	suite.mockProfileRepo.EXPECT().GetByUserID(uint(1)).Return(nil, apperrors.ErrProfileNotFound)

	_, err := suite.profileService.GetProfileByUserID(1)

	suite.ErrorIs(err, apperrors.ErrProfileNotFound)
}

func (suite *ProfileServiceTestSuite) TestUpdateProfilePartial() {
	existing := &models.Profile{ID: 10, UserID: 1, Username: "alice", DisplayName: "Alice", Bio: "hi", Theme: models.ThemeDefault}

	suite.mockProfileRepo.EXPECT().GetByUserID(uint(1)).Return(existing, nil)
	suite.mockProfileRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Profile) error {
		suite.Equal("Alice A.", p.DisplayName)
		suite.Equal("hi", p.Bio)
		return nil
	})

	res, err := suite.profileService.UpdateProfile(1, &service.UpdateProfileRequest{DisplayName: strPtr("Alice A.")})

	suite.NoError(err)
	suite.Equal("Alice A.", res.DisplayName)
	suite.Equal("alice", res.Username)
}

func (suite *ProfileServiceTestSuite) TestUpdateProfileUsernameTaken() {
	existing := &models.Profile{ID: 10, UserID: 1, Username: "alice"}

	suite.mockProfileRepo.EXPECT().GetByUserID(uint(1)).Return(existing, nil)
	suite.mockProfileRepo.EXPECT().GetByUsername("bob").Return(&models.Profile{ID: 20, UserID: 2, Username: "bob"}, nil)

	_, err := suite.profileService.UpdateProfile(1, &service.UpdateProfileRequest{Username: strPtr("bob")})

	suite.ErrorIs(err, apperrors.ErrUsernameTaken)
}

func (suite *ProfileServiceTestSuite) TestUpdateProfileUsernameFree() {
	existing := &models.Profile{ID: 10, UserID: 1, Username: "alice"}

	suite.mockProfileRepo.EXPECT().GetByUserID(uint(1)).Return(existing, nil)
	suite.mockProfileRepo.EXPECT().GetByUsername("alice2").Return(nil, apperrors.ErrProfileNotFound)
	suite.mockProfileRepo.EXPECT().Update(gomock.Any()).Return(nil)

	res, err := suite.profileService.UpdateProfile(1, &service.UpdateProfileRequest{Username: strPtr("alice2")})

	suite.NoError(err)
	suite.Equal("alice2", res.Username)
}

func (suite *ProfileServiceTestSuite) TestGetPublicProfileFiltersHiddenLinks() {
	suite.mockProfileRepo.EXPECT().GetByUsername("alice").Return(&models.Profile{ID: 10, Username: "alice"}, nil)
	suite.mockLinkRepo.EXPECT().GetByProfileID(uint(10)).Return([]models.Link{
		{ID: 1, ProfileID: 10, Title: "Visible", Position: 0, IsVisible: true},
		{ID: 2, ProfileID: 10, Title: "Hidden", Position: 1, IsVisible: false},
		{ID: 3, ProfileID: 10, Title: "Also visible", Position: 2, IsVisible: true},
	}, nil)

	res, err := suite.profileService.GetPublicProfile("alice")

	suite.NoError(err)
	suite.Equal("alice", res.Profile.Username)
	suite.Len(res.Links, 2)
	suite.Equal("Visible", res.Links[0].Title)
	suite.Equal("Also visible", res.Links[1].Title)
}

func (suite *ProfileServiceTestSuite) TestGetPublicProfileNotFound() {
	suite.mockProfileRepo.EXPECT().GetByUsername("ghost").Return(nil, apperrors.ErrProfileNotFound)

	_, err := suite.profileService.GetPublicProfile("ghost")

	suite.ErrorIs(err, apperrors.ErrProfileNotFound)
}

func (suite *ProfileServiceTestSuite) TestGetPublicProfileCacheHit() {
	cache := mocks.NewMockPublicPageCache(suite.ctrl)
	svc := service.NewProfileService(suite.mockProfileRepo, suite.mockLinkRepo, cache, suite.validator)

	payload, err := json.Marshal(&service.PublicProfileResponse{
		Profile: service.ProfileResponse{ID: 10, Username: "alice"},
		Links:   []service.LinkResponse{{ID: 1, Title: "Cached"}},
	})
	suite.Require().NoError(err)

	// Repositories must not be touched on a hit
	cache.EXPECT().Get("alice").Return(payload, true)

	res, err := svc.GetPublicProfile("alice")

	suite.NoError(err)
	suite.Equal("alice", res.Profile.Username)
	suite.Len(res.Links, 1)
	suite.Equal("Cached", res.Links[0].Title)
}

func (suite *ProfileServiceTestSuite) TestGetPublicProfileCacheMissPopulates() {
	cache := mocks.NewMockPublicPageCache(suite.ctrl)
	svc := service.NewProfileService(suite.mockProfileRepo, suite.mockLinkRepo, cache, suite.validator)

	cache.EXPECT().Get("alice").Return(nil, false)
	suite.mockProfileRepo.EXPECT().GetByUsername("alice").Return(&models.Profile{ID: 10, Username: "alice"}, nil)
	suite.mockLinkRepo.EXPECT().GetByProfileID(uint(10)).Return([]models.Link{}, nil)
	cache.EXPECT().Set("alice", gomock.Any())

	res, err := svc.GetPublicProfile("alice")

	suite.NoError(err)
	suite.Equal("alice", res.Profile.Username)
}

func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
