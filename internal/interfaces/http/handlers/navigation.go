// internal/interfaces/http/handlers/navigation.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/smartcart-backend/internal/domain/catalog"
	"github.com/your-org/smartcart-backend/internal/domain/navigation"
)

// NavigationHandler serves store navigation routes
type NavigationHandler struct {
	navigationService *navigation.Service
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(navigationService *navigation.Service) *NavigationHandler {
	return &NavigationHandler{
		navigationService: navigationService,
	}
}

// GetRoute handles GET /navigation/route. lat and lng are optional; the
// route starts from the store entrance when they are absent or invalid.
func (h *NavigationHandler) GetRoute(c *gin.Context) {
	productName := c.Query("product")
	if productName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'product' is required",
		})
		return
	}

	var start *catalog.Coordinate
	latParam, lngParam := c.Query("lat"), c.Query("lng")
	if latParam != "" && lngParam != "" {
		lat, latErr := strconv.ParseFloat(latParam, 64)
		lng, lngErr := strconv.ParseFloat(lngParam, 64)
		if latErr == nil && lngErr == nil {
			start = &catalog.Coordinate{Lat: lat, Lng: lng}
		}
	}

	route, err := h.navigationService.Route(productName, start)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Route calculated successfully",
		"data":    route,
	})
}
