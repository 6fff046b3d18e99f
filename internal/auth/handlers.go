package auth

import (
	"net/http"

	apperrors "biolinker-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler handles HTTP requests for registration and login
type Handler struct {
	service *Service
}

// NewHandler creates a new auth handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CredentialsBody is the request body for register and login
type CredentialsBody struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// SessionResponse is returned by register and login
type SessionResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// SessionUser is the account summary embedded in SessionResponse
type SessionUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// Register handles POST /auth/register
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsBody true "Email and password"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} map[string]interface{} "Invalid body or email taken"
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var body CredentialsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, token, err := h.service.Register(body.Email, body.Password)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "field": "email"})
			return
		}
		logrus.WithError(err).Error("registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register"})
		return
	}

	logrus.WithField("user_id", user.ID).Info("user registered")
	c.JSON(http.StatusCreated, SessionResponse{
		Token: token,
		User:  SessionUser{ID: user.ID, Email: user.Email},
	})
}

// Login handles POST /auth/login
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsBody true "Email and password"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var body CredentialsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, token, err := h.service.Login(body.Email, body.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}
		logrus.WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		Token: token,
		User:  SessionUser{ID: user.ID, Email: user.Email},
	})
}
