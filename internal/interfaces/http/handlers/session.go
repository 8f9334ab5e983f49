// internal/interfaces/http/handlers/session.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/smartcart-backend/internal/config"
	"github.com/your-org/smartcart-backend/internal/pkg/auth"
)

// SessionHandler issues anonymous shopper sessions
type SessionHandler struct {
	sessionManager *auth.SessionManager
	config         *config.Config
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(cfg *config.Config) *SessionHandler {
	return &SessionHandler{
		sessionManager: auth.NewSessionManager(cfg),
		config:         cfg,
	}
}

// Create handles POST /session
func (h *SessionHandler) Create(c *gin.Context) {
	sessionID, token, err := h.sessionManager.Issue()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create session",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Session created successfully",
		"data": gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_in": int(h.config.JWT.SessionExpiry.Seconds()),
		},
	})
}
