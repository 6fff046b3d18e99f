package handlers

import (
	"net/http"
	"strconv"

	"biolinker-backend/internal/auth"
	apperrors "biolinker-backend/internal/errors"
	"biolinker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LinkHandler handles HTTP requests for the caller's links. Every route
// resolves the caller's own profile first; link ids are only ever used
// within that profile's scope, so foreign ids are indistinguishable from
// missing ones.
type LinkHandler struct {
	linkService    service.LinkServiceInterface
	profileService service.ProfileServiceInterface
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(linkService service.LinkServiceInterface, profileService service.ProfileServiceInterface) *LinkHandler {
	return &LinkHandler{
		linkService:    linkService,
		profileService: profileService,
	}
}

// ReorderLinksBody is the request body for POST /links/reorder
type ReorderLinksBody struct {
	IDs []uint `json:"ids" binding:"required"`
}

// callerProfile resolves the authenticated caller's profile, answering the
// request itself when there is none.
func (h *LinkHandler) callerProfile(c *gin.Context) (*service.ProfileResponse, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return nil, false
	}

	profile, err := h.profileService.GetProfileByUserID(userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		} else {
			respondError(c, err)
		}
		return nil, false
	}
	return profile, true
}

// linkIDParam parses the :id path parameter
func linkIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid link id"})
		return 0, false
	}
	return uint(id), true
}

// ListLinks handles GET /links
// @Summary List the caller's links
// @Description Returns all links of the caller's profile ascending by position
// @Tags links
// @Produce json
// @Success 200 {array} service.LinkResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "No profile yet"
// @Security BearerAuth
// @Router /links [get]
func (h *LinkHandler) ListLinks(c *gin.Context) {
	profile, ok := h.callerProfile(c)
	if !ok {
		return
	}

	links, err := h.linkService.ListLinks(profile.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// CreateLink handles POST /links
// @Summary Create a link
// @Description Appends a link at the end of the caller's sequence; position is server-assigned
// @Tags links
// @Accept json
// @Produce json
// @Param link body service.CreateLinkRequest true "Link data"
// @Success 201 {object} service.LinkResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "No profile yet"
// @Security BearerAuth
// @Router /links [post]
func (h *LinkHandler) CreateLink(c *gin.Context) {
	profile, ok := h.callerProfile(c)
	if !ok {
		return
	}

	var req service.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	link, err := h.linkService.CreateLink(profile.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// UpdateLink handles PATCH /links/:id
// @Summary Update a link
// @Description Applies only the supplied fields; position cannot change here
// @Tags links
// @Accept json
// @Produce json
// @Param id path int true "Link ID"
// @Param link body service.UpdateLinkRequest true "Fields to update"
// @Success 200 {object} service.LinkResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Unknown or foreign link"
// @Security BearerAuth
// @Router /links/{id} [patch]
func (h *LinkHandler) UpdateLink(c *gin.Context) {
	profile, ok := h.callerProfile(c)
	if !ok {
		return
	}
	linkID, ok := linkIDParam(c)
	if !ok {
		return
	}

	var req service.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	link, err := h.linkService.UpdateLink(profile.ID, linkID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// DeleteLink handles DELETE /links/:id
// @Summary Delete a link
// @Description Removes the link; remaining positions are not compacted
// @Tags links
// @Param id path int true "Link ID"
// @Success 204 "Deleted"
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Unknown or foreign link"
// @Security BearerAuth
// @Router /links/{id} [delete]
func (h *LinkHandler) DeleteLink(c *gin.Context) {
	profile, ok := h.callerProfile(c)
	if !ok {
		return
	}
	linkID, ok := linkIDParam(c)
	if !ok {
		return
	}

	if err := h.linkService.DeleteLink(profile.ID, linkID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReorderLinks handles POST /links/reorder
// @Summary Reorder the caller's links
// @Description Assigns position = index for every id; the id list must be exactly the profile's current link set
// @Tags links
// @Accept json
// @Produce json
// @Param body body ReorderLinksBody true "Full ordered id list"
// @Success 200 {array} service.LinkResponse
// @Failure 400 {object} map[string]interface{} "Id set mismatch"
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "No profile yet"
// @Security BearerAuth
// @Router /links/reorder [post]
func (h *LinkHandler) ReorderLinks(c *gin.Context) {
	profile, ok := h.callerProfile(c)
	if !ok {
		return
	}

	var body ReorderLinksBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	links, err := h.linkService.ReorderLinks(profile.ID, body.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}
