package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"biolinker-backend/internal/api/handlers"
	apperrors "biolinker-backend/internal/errors"
	"biolinker-backend/internal/mocks"
	"biolinker-backend/internal/service"
	"biolinker-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProfileHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockProfile *mocks.MockProfileServiceInterface
	handler     *handlers.ProfileHandler
	http        *testutils.HTTPTestSuite
}

func (suite *ProfileHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProfile = mocks.NewMockProfileServiceInterface(suite.ctrl)
	suite.handler = handlers.NewProfileHandler(suite.mockProfile)

	suite.http = testutils.SetupHTTPTest()
	// The public page is registered outside the auth group
	suite.http.Router.GET("/public/profiles/:username", suite.handler.GetPublicProfile)

	authed := suite.http.Router.Group("/")
	authed.Use(func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Next()
	})
	authed.GET("/profiles/me", suite.handler.GetMyProfile)
	authed.POST("/profiles", suite.handler.CreateProfile)
	authed.PATCH("/profiles/me", suite.handler.UpdateProfile)
}

func (suite *ProfileHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProfileHandlerTestSuite) TestGetMyProfile() {
	suite.mockProfile.EXPECT().
		GetProfileByUserID(uint(1)).
		Return(&service.ProfileResponse{ID: 7, UserID: 1, Username: "alice"}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/profiles/me", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.ProfileResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "alice", got.Username)
}

func (suite *ProfileHandlerTestSuite) TestGetMyProfileNoneYet() {
	suite.mockProfile.EXPECT().
		GetProfileByUserID(uint(1)).
		Return(nil, apperrors.ErrProfileNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/profiles/me", nil)

	// A missing profile is not an error state for the dashboard
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "null", w.Body.String())
}

func (suite *ProfileHandlerTestSuite) TestCreateProfile() {
	suite.mockProfile.EXPECT().
		CreateProfile(uint(1), gomock.Any()).
		DoAndReturn(func(userID uint, req *service.CreateProfileRequest) (*service.ProfileResponse, error) {
			assert.Equal(suite.T(), "alice", req.Username)
			return &service.ProfileResponse{ID: 7, UserID: 1, Username: "alice", Theme: "default"}, nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/profiles", map[string]interface{}{
		"username": "alice",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var got service.ProfileResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "default", got.Theme)
}

func (suite *ProfileHandlerTestSuite) TestCreateProfileUsernameTaken() {
	suite.mockProfile.EXPECT().
		CreateProfile(uint(1), gomock.Any()).
		Return(nil, apperrors.ErrUsernameTaken)

	w := suite.http.MakeRequest(http.MethodPost, "/profiles", map[string]interface{}{
		"username": "alice",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	var got map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "username", got["field"])
}

func (suite *ProfileHandlerTestSuite) TestCreateProfileAlreadyExists() {
	suite.mockProfile.EXPECT().
		CreateProfile(uint(1), gomock.Any()).
		Return(nil, apperrors.ErrProfileExists)

	w := suite.http.MakeRequest(http.MethodPost, "/profiles", map[string]interface{}{
		"username": "alice",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProfileHandlerTestSuite) TestUpdateProfile() {
	suite.mockProfile.EXPECT().
		UpdateProfile(uint(1), gomock.Any()).
		Return(&service.ProfileResponse{ID: 7, UserID: 1, Username: "alice", DisplayName: "Alice A."}, nil)

	w := suite.http.MakeRequest(http.MethodPatch, "/profiles/me", map[string]interface{}{
		"display_name": "Alice A.",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.ProfileResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Alice A.", got.DisplayName)
}

func (suite *ProfileHandlerTestSuite) TestUpdateProfileNoneYet() {
	suite.mockProfile.EXPECT().
		UpdateProfile(uint(1), gomock.Any()).
		Return(nil, apperrors.ErrProfileNotFound)

	w := suite.http.MakeRequest(http.MethodPatch, "/profiles/me", map[string]interface{}{
		"display_name": "Alice A.",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ProfileHandlerTestSuite) TestGetPublicProfile() {
	suite.mockProfile.EXPECT().
		GetPublicProfile("alice").
		Return(&service.PublicProfileResponse{
			Profile: service.ProfileResponse{ID: 7, Username: "alice"},
			Links: []service.LinkResponse{
				{ID: 1, Title: "Visible", Order: 0, IsVisible: true},
			},
		}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/public/profiles/alice", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.PublicProfileResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "alice", got.Profile.Username)
	assert.Len(suite.T(), got.Links, 1)
}

func (suite *ProfileHandlerTestSuite) TestGetPublicProfileNotFound() {
	suite.mockProfile.EXPECT().
		GetPublicProfile("ghost").
		Return(nil, apperrors.ErrProfileNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/public/profiles/ghost", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestProfileHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}
