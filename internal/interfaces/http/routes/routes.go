// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/smartcart-backend/internal/config"
	"github.com/your-org/smartcart-backend/internal/domain/cart"
	"github.com/your-org/smartcart-backend/internal/domain/catalog"
	"github.com/your-org/smartcart-backend/internal/domain/detection"
	"github.com/your-org/smartcart-backend/internal/domain/navigation"
	"github.com/your-org/smartcart-backend/internal/domain/offers"
	"github.com/your-org/smartcart-backend/internal/domain/payment"
	"github.com/your-org/smartcart-backend/internal/interfaces/http/handlers"
	"github.com/your-org/smartcart-backend/internal/interfaces/http/middleware"
	"github.com/your-org/smartcart-backend/internal/pkg/receipt"
)

// Services bundles the long-lived domain services shared by all
// handlers. Detection and payment are stateful, so they must be
// constructed once at startup, not per request.
type Services struct {
	Catalog    *catalog.Service
	Cart       *cart.Service
	Offers     *offers.Service
	Navigation *navigation.Service
	Payment    *payment.Service
	Receipt    *receipt.Service
	Detection  *detection.Manager
	Classifier detection.Classifier
	Logger     *logrus.Logger
}

// SetupRoutes wires every API route group
func SetupRoutes(rg *gin.RouterGroup, services *Services, cfg *config.Config) {
	SetupSessionRoutes(rg, cfg)
	SetupCatalogRoutes(rg, services)
	SetupCartRoutes(rg, services, cfg)
	SetupDetectionRoutes(rg, services, cfg)
	SetupPaymentRoutes(rg, services, cfg)
	SetupOffersRoutes(rg, services, cfg)
	SetupNavigationRoutes(rg, services)
}

// SetupSessionRoutes sets up shopper session routes
func SetupSessionRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	sessionHandler := handlers.NewSessionHandler(cfg)

	rg.POST("/session", sessionHandler.Create)
}

// SetupCatalogRoutes sets up product catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, services *Services) {
	productHandler := handlers.NewProductHandler(services.Catalog)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/search", productHandler.SearchProducts)
	}
}

// SetupCartRoutes sets up cart routes
func SetupCartRoutes(rg *gin.RouterGroup, services *Services, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(services.Cart)

	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.SessionMiddleware(cfg))
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}
}

// SetupDetectionRoutes sets up detection pipeline routes
func SetupDetectionRoutes(rg *gin.RouterGroup, services *Services, cfg *config.Config) {
	detectionHandler := handlers.NewDetectionHandler(services.Detection, services.Classifier)

	detectionGroup := rg.Group("/detection")
	detectionGroup.Use(middleware.SessionMiddleware(cfg))
	{
		detectionGroup.POST("/start", detectionHandler.Start)
		detectionGroup.POST("/stop", detectionHandler.Stop)
		detectionGroup.POST("/events", detectionHandler.Ingest)
		detectionGroup.GET("/status", detectionHandler.Status)
	}
}

// SetupPaymentRoutes sets up payment routes
func SetupPaymentRoutes(rg *gin.RouterGroup, services *Services, cfg *config.Config) {
	paymentHandler := handlers.NewPaymentHandler(services.Payment, services.Cart, services.Receipt, services.Logger)

	paymentGroup := rg.Group("/payment")
	paymentGroup.Use(middleware.SessionMiddleware(cfg))
	{
		paymentGroup.POST("/submit", paymentHandler.Submit)
		paymentGroup.POST("/otp", paymentHandler.SubmitOTP)
		paymentGroup.POST("/verify", paymentHandler.Verify)
		paymentGroup.POST("/cancel", paymentHandler.Cancel)
		paymentGroup.GET("/status", paymentHandler.Status)
		paymentGroup.GET("/qr.png", paymentHandler.QRImage)
		paymentGroup.GET("/receipt.pdf", paymentHandler.Receipt)
		paymentGroup.GET("/history", paymentHandler.History)
	}
}

// SetupOffersRoutes sets up offers routes
func SetupOffersRoutes(rg *gin.RouterGroup, services *Services, cfg *config.Config) {
	offersHandler := handlers.NewOffersHandler(services.Offers, services.Cart)

	offersGroup := rg.Group("/offers")
	{
		offersGroup.GET("", offersHandler.GetOffers)

		cartOffers := offersGroup.Group("/cart")
		cartOffers.Use(middleware.SessionMiddleware(cfg))
		cartOffers.GET("", offersHandler.GetCartOffers)
	}
}

// SetupNavigationRoutes sets up store navigation routes
func SetupNavigationRoutes(rg *gin.RouterGroup, services *Services) {
	navigationHandler := handlers.NewNavigationHandler(services.Navigation)

	navigationGroup := rg.Group("/navigation")
	{
		navigationGroup.GET("/route", navigationHandler.GetRoute)
	}
}
