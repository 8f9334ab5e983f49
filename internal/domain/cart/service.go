// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/smartcart-backend/internal/config"
	"github.com/your-org/smartcart-backend/internal/domain/catalog"
)

// ErrUnknownProduct is returned when a detected or requested item is not
// in the product catalog. The cart is left untouched.
var ErrUnknownProduct = errors.New("unknown product")

// Service handles cart business logic. Carts are session-scoped and live
// in Redis for the lifetime of the shopping session.
type Service struct {
	redisClient *redis.Client
	catalog     *catalog.Service
	config      *config.Config
	logger      *logrus.Logger
	now         func() time.Time
}

// NewService creates a new cart service
func NewService(redisClient *redis.Client, cat *catalog.Service, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		redisClient: redisClient,
		catalog:     cat,
		config:      cfg,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CartResponse represents a cart with its computed totals
type CartResponse struct {
	SessionID string    `json:"session_id"`
	Lines     []Line    `json:"lines"`
	Totals    Totals    `json:"totals"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetCart retrieves the cart for a session, creating an empty one if none exists
func (s *Service) GetCart(ctx context.Context, sessionID string) (*CartResponse, error) {
	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(sessionCart), nil
}

// AddOrIncrement adds one unit of a catalog product to the session cart.
// Unknown product names are a warning no-op.
func (s *Service) AddOrIncrement(ctx context.Context, sessionID, productName string) (*CartResponse, error) {
	product, err := s.catalog.FindByName(productName)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"product":    productName,
		}).Warn("Unknown item detected, cart unchanged")
		return nil, ErrUnknownProduct
	}

	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sessionCart.AddOrIncrement(product.Name, product.Price, s.now())

	if err := s.save(ctx, sessionID, sessionCart); err != nil {
		return nil, err
	}

	return s.toResponse(sessionCart), nil
}

// Clear removes all items from the session cart
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	cartKey := s.cartKey(sessionID)
	return s.redisClient.Del(ctx, cartKey).Err()
}

// Total returns the current cart total for a session
func (s *Service) Total(ctx context.Context, sessionID string) (int64, error) {
	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return sessionCart.Total(), nil
}

// Snapshot returns the raw cart entity for read-only joins (offers, payment)
func (s *Service) Snapshot(ctx context.Context, sessionID string) (*Cart, error) {
	return s.load(ctx, sessionID)
}

// Private helper methods

func (s *Service) load(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for cart access")
	}

	cartKey := s.cartKey(sessionID)

	cartData, err := s.redisClient.Get(ctx, cartKey).Result()
	if err == redis.Nil {
		// Cart doesn't exist, return empty cart
		now := s.now()
		return &Cart{
			SessionID: sessionID,
			Lines:     []Line{},
			CreatedAt: now,
			UpdatedAt: now,
			ExpiresAt: now.Add(s.config.Redis.CartTTL),
		}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	var sessionCart Cart
	if err := json.Unmarshal([]byte(cartData), &sessionCart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	return &sessionCart, nil
}

func (s *Service) save(ctx context.Context, sessionID string, sessionCart *Cart) error {
	cartKey := s.cartKey(sessionID)

	cartData, err := json.Marshal(sessionCart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	return s.redisClient.Set(ctx, cartKey, cartData, s.config.Redis.CartTTL).Err()
}

func (s *Service) cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

func (s *Service) toResponse(sessionCart *Cart) *CartResponse {
	return &CartResponse{
		SessionID: sessionCart.SessionID,
		Lines:     sessionCart.Lines,
		Totals:    sessionCart.CalculateTotals(),
		CreatedAt: sessionCart.CreatedAt,
		UpdatedAt: sessionCart.UpdatedAt,
	}
}
