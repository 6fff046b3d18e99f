package handlers

import (
	"net/http"

	"biolinker-backend/internal/auth"
	apperrors "biolinker-backend/internal/errors"
	"biolinker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles HTTP requests for the caller's own profile and
// the public page.
type ProfileHandler struct {
	profileService service.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetMyProfile handles GET /profiles/me
// @Summary Get the caller's profile
// @Description Returns the profile, or a JSON null when none exists yet
// @Tags profiles
// @Produce json
// @Success 200 {object} service.ProfileResponse
// @Failure 401 {object} map[string]interface{}
// @Security BearerAuth
// @Router /profiles/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	profile, err := h.profileService.GetProfileByUserID(userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			// No profile yet; the dashboard treats null as "show onboarding"
			c.JSON(http.StatusOK, nil)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// CreateProfile handles POST /profiles
// @Summary Create the caller's profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body service.CreateProfileRequest true "Profile data"
// @Success 201 {object} service.ProfileResponse
// @Failure 400 {object} map[string]interface{} "Validation, duplicate profile, or username taken"
// @Failure 401 {object} map[string]interface{}
// @Security BearerAuth
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req service.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	profile, err := h.profileService.CreateProfile(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// UpdateProfile handles PATCH /profiles/me
// @Summary Update the caller's profile
// @Description Applies only the supplied fields; username changes re-check uniqueness
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body service.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} service.ProfileResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "No profile yet"
// @Security BearerAuth
// @Router /profiles/me [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	profile, err := h.profileService.UpdateProfile(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetPublicProfile handles GET /public/profiles/:username (no auth)
// @Summary Get a public page by username
// @Description Returns the profile and its visible links only
// @Tags public
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} service.PublicProfileResponse
// @Failure 404 {object} map[string]interface{}
// @Router /public/profiles/{username} [get]
func (h *ProfileHandler) GetPublicProfile(c *gin.Context) {
	username := c.Param("username")

	page, err := h.profileService.GetPublicProfile(username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
