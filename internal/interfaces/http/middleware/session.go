// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/smartcart-backend/internal/config"
	"github.com/your-org/smartcart-backend/internal/pkg/auth"
)

const sessionIDKey = "session_id"

// SessionMiddleware requires a valid shopper session token and puts the
// session ID into the request context
func SessionMiddleware(cfg *config.Config) gin.HandlerFunc {
	sessionManager := auth.NewSessionManager(cfg)

	return func(c *gin.Context) {
		tokenString := auth.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session token required",
			})
			c.Abort()
			return
		}

		claims, err := sessionManager.Validate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session token",
			})
			c.Abort()
			return
		}

		c.Set(sessionIDKey, claims.SessionID)
		c.Next()
	}
}

// GetSessionIDFromContext returns the shopper session ID set by
// SessionMiddleware
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(sessionIDKey)
	if !exists {
		return "", false
	}
	sessionID, ok := value.(string)
	return sessionID, ok && sessionID != ""
}
