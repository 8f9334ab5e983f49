// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/smartcart-backend/internal/config"
	"github.com/your-org/smartcart-backend/internal/domain/cart"
	"github.com/your-org/smartcart-backend/internal/domain/catalog"
	"github.com/your-org/smartcart-backend/internal/domain/detection"
	"github.com/your-org/smartcart-backend/internal/domain/navigation"
	"github.com/your-org/smartcart-backend/internal/domain/offers"
	"github.com/your-org/smartcart-backend/internal/domain/payment"
	"github.com/your-org/smartcart-backend/internal/infrastructure/database/redis"
	"github.com/your-org/smartcart-backend/internal/interfaces/http"
	"github.com/your-org/smartcart-backend/internal/interfaces/http/routes"
	"github.com/your-org/smartcart-backend/internal/pkg/receipt"
)

// cartSink adapts the cart service to the detection pipeline's sink
type cartSink struct {
	cart *cart.Service
}

func (s cartSink) AddOrIncrement(ctx context.Context, sessionID, productName string) error {
	_, err := s.cart.AddOrIncrement(ctx, sessionID, productName)
	return err
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	logger := newLogger(cfg)

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		log.Fatalf("Redis health check failed: %v", err)
	}

	// Load the classifier model. A failed load disables detection but
	// the rest of the API stays up.
	classifier := detection.NewRemoteClassifier(cfg, logger)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Classifier.LoadTimeout)
	if err := classifier.Load(loadCtx); err != nil {
		log.Printf("⚠️  Classifier model load failed, detection disabled: %v", err)
	} else {
		log.Println("✅ Classifier model loaded")
	}
	cancelLoad()

	// Build domain services
	catalogService := catalog.NewService()
	cartService := cart.NewService(redisClient.GetClient(), catalogService, cfg, logger)
	offersService := offers.NewService()
	navigationService := navigation.NewService(catalogService)

	verifier := payment.NewSimulatedVerifier(cfg.Payment.VerifyDelay, cfg.Payment.SuccessProbability)
	paymentService := payment.NewService(verifier, cfg, logger)
	receiptService := receipt.NewService(cfg)

	detectionManager := detection.NewManager(classifier, cartSink{cart: cartService}, cfg, logger)

	log.Println("✅ All systems operational!")

	services := &routes.Services{
		Catalog:    catalogService,
		Cart:       cartService,
		Offers:     offersService,
		Navigation: navigationService,
		Payment:    paymentService,
		Receipt:    receiptService,
		Detection:  detectionManager,
		Classifier: classifier,
		Logger:     logger,
	}

	// Create and start HTTP server
	server := http.NewServer(cfg, redisClient.GetClient(), services)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	// Stop detection loops and payment timers before closing the server
	detectionManager.StopAll()
	paymentService.Teardown()

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}

// newLogger builds the application logger from config
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
