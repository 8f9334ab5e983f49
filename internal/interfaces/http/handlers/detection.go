// internal/interfaces/http/handlers/detection.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/smartcart-backend/internal/domain/detection"
	"github.com/your-org/smartcart-backend/internal/interfaces/http/middleware"
)

// DetectionHandler controls the product detection pipeline
type DetectionHandler struct {
	manager    *detection.Manager
	classifier detection.Classifier
}

// NewDetectionHandler creates a new detection handler
func NewDetectionHandler(manager *detection.Manager, classifier detection.Classifier) *DetectionHandler {
	return &DetectionHandler{
		manager:    manager,
		classifier: classifier,
	}
}

// StartRequest is the body for POST /detection/start
type StartRequest struct {
	CameraURL string `json:"camera_url" binding:"required"`
}

// EventRequest is the body for POST /detection/events
type EventRequest struct {
	Label      string  `json:"label" binding:"required"`
	Confidence float64 `json:"confidence"`
}

// Start handles POST /detection/start
func (h *DetectionHandler) Start(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	if !h.classifier.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Classifier model is not loaded; detection is unavailable",
		})
		return
	}

	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.manager.Start(sessionID, req.CameraURL); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Detection started successfully",
	})
}

// Stop handles POST /detection/stop
func (h *DetectionHandler) Stop(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	h.manager.Stop(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Detection stopped successfully",
	})
}

// Ingest handles POST /detection/events for browser-side classification
func (h *DetectionHandler) Ingest(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result := h.manager.Ingest(c.Request.Context(), sessionID, detection.Event{
		Label:      req.Label,
		Confidence: req.Confidence,
		Timestamp:  time.Now().UTC(),
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Event processed",
		"data":    result,
	})
}

// Status handles GET /detection/status
func (h *DetectionHandler) Status(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	status, found := h.manager.Status(sessionID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Detection status retrieved",
		"data": gin.H{
			"classifier_ready": h.classifier.Ready(),
			"active":           found,
			"status":           status,
		},
	})
}
