package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the caller's identity, injected by the API gateway
// after authentication. This service trusts it as-is.
const UserIDHeader = "X-User-Id"

// RequireUserID rejects requests that arrive without a gateway-injected user
// id and stores the id in the Gin context for handlers.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing user identity"})
			return
		}
		c.Set(string(userIDKey), userID)
		c.Next()
	}
}

// GetUserIDFromContext retrieves the caller's user id from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		return "", false
	}
	userID, ok := userIDVal.(string)
	return userID, ok
}
