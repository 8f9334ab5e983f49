// internal/interfaces/http/handlers/offers.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/smartcart-backend/internal/domain/cart"
	"github.com/your-org/smartcart-backend/internal/domain/offers"
	"github.com/your-org/smartcart-backend/internal/interfaces/http/middleware"
)

// OffersHandler serves the promotional offers catalog
type OffersHandler struct {
	offersService *offers.Service
	cartService   *cart.Service
}

// NewOffersHandler creates a new offers handler
func NewOffersHandler(offersService *offers.Service, cartService *cart.Service) *OffersHandler {
	return &OffersHandler{
		offersService: offersService,
		cartService:   cartService,
	}
}

// GetOffers handles GET /offers. An optional product query filters to
// offers applicable to that product.
func (h *OffersHandler) GetOffers(c *gin.Context) {
	if product := c.Query("product"); product != "" {
		c.JSON(http.StatusOK, gin.H{
			"message": "Offers retrieved successfully",
			"data":    h.offersService.ForProduct(product),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Offers retrieved successfully",
		"data":    h.offersService.All(),
	})
}

// GetCartOffers handles GET /offers/cart
func (h *OffersHandler) GetCartOffers(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	snapshot, err := h.cartService.Snapshot(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart offers retrieved successfully",
		"data":    h.offersService.ForCart(snapshot),
	})
}
