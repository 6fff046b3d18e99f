package auth

import (
	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey = "user_id"
	ctxEmailKey  = "email"
)

// GetUserID returns the authenticated user's ID from the gin context
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// GetEmail returns the authenticated user's email from the gin context
func GetEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(ctxEmailKey)
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}
