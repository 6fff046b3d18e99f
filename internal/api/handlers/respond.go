package handlers

import (
	"errors"
	"net/http"

	apperrors "biolinker-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps the error taxonomy onto HTTP statuses. Not-found is
// used for both missing and foreign resources so ownership probing always
// looks the same from the outside.
func respondError(c *gin.Context, err error) {
	var existsErr *apperrors.AlreadyExistsError
	var validationErr *apperrors.ValidationError

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.As(err, &existsErr):
		body := gin.H{"message": existsErr.Error()}
		if existsErr.Field != "" {
			body["field"] = existsErr.Field
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.As(err, &validationErr):
		body := gin.H{"message": validationErr.Error()}
		if validationErr.Field != "" {
			body["field"] = validationErr.Field
		}
		c.JSON(http.StatusBadRequest, body)
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	default:
		logrus.WithError(err).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
