package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the cashier's user ID from the Gin context.
func GetUserID(c *gin.Context) (int64, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, ok := userIDVal.(int64)
	return userID, ok
}

// GetAuthToken returns the raw bearer token for forwarding to the backend.
func GetAuthToken(c *gin.Context) string {
	token, exists := c.Get("auth_token")
	if !exists {
		return ""
	}
	return token.(string)
}

// SessionID parses the :id route parameter as a session UUID.
func SessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
