// internal/domain/offers/service_test.go
package offers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/smartcart-backend/internal/domain/cart"
)

func cartWith(lines ...cart.Line) *cart.Cart {
	return &cart.Cart{
		SessionID: "test-session",
		Lines:     lines,
		CreatedAt: time.Now().UTC(),
	}
}

func findOffer(t *testing.T, result CartOffersResult, id int) CartOffer {
	t.Helper()
	for _, offer := range result.Offers {
		if offer.ID == id {
			return offer
		}
	}
	t.Fatalf("offer %d not in result", id)
	return CartOffer{}
}

func TestAll(t *testing.T) {
	s := NewService()
	assert.Len(t, s.All(), 8)
}

func TestForProduct(t *testing.T) {
	s := NewService()

	offers := s.ForProduct("Lays")
	require.Len(t, offers, 1)
	assert.Equal(t, "Snack Attack Combo", offers[0].Title)

	// Matching ignores the catalog's inconsistent capitalization
	offers = s.ForProduct("oreo")
	require.Len(t, offers, 1)
	assert.Equal(t, "Sweet Treats Offer", offers[0].Title)

	assert.Empty(t, s.ForProduct("Unknown Thing"))
}

func TestForCart_ComboSavings(t *testing.T) {
	s := NewService()

	// 2 Coca Cola + 1 Grape juice: 3 matched units, one free per 2,
	// priced at the cheapest matched line
	result := s.ForCart(cartWith(
		cart.Line{Name: "Coca Cola", Price: 35, Quantity: 2},
		cart.Line{Name: "Grape nector juice", Price: 60, Quantity: 1},
	))

	combo := findOffer(t, result, 1)
	assert.Equal(t, int64(35), combo.Savings)
	assert.Len(t, combo.MatchedLines, 2)
}

func TestForCart_PercentageSavings(t *testing.T) {
	s := NewService()

	// Lays 20 + Pringles 90 = 110, 20% off
	result := s.ForCart(cartWith(
		cart.Line{Name: "Lays", Price: 20, Quantity: 1},
		cart.Line{Name: "Pringles", Price: 90, Quantity: 1},
	))

	snack := findOffer(t, result, 2)
	assert.Equal(t, int64(22), snack.Savings)
	assert.Equal(t, int64(22), result.TotalSavings)
}

func TestForCart_BelowQuantityGateListsOfferWithZeroSavings(t *testing.T) {
	s := NewService()

	result := s.ForCart(cartWith(
		cart.Line{Name: "Lays", Price: 20, Quantity: 1},
	))

	snack := findOffer(t, result, 2)
	assert.Equal(t, int64(0), snack.Savings)
}

func TestForCart_BulkSavings(t *testing.T) {
	s := NewService()

	// Fresh Vegetables gate at 3 units
	below := s.ForCart(cartWith(cart.Line{Name: "Fresh Vegetables", Price: 80, Quantity: 2}))
	assert.Equal(t, int64(0), findOffer(t, below, 6).Savings)

	at := s.ForCart(cartWith(cart.Line{Name: "Fresh Vegetables", Price: 80, Quantity: 3}))
	assert.Equal(t, int64(36), findOffer(t, at, 6).Savings) // 240 * 15%
}

func TestForCart_UnrelatedProductsMatchNothing(t *testing.T) {
	s := NewService()

	result := s.ForCart(cartWith(cart.Line{Name: "Colgate toothpaste", Price: 40, Quantity: 1}))

	require.Len(t, result.Offers, 1)
	assert.Equal(t, 3, result.Offers[0].ID)
}

func TestForCart_EmptyCart(t *testing.T) {
	s := NewService()

	result := s.ForCart(cartWith())
	assert.Empty(t, result.Offers)
	assert.Equal(t, int64(0), result.TotalSavings)
}
