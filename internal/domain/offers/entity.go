// internal/domain/offers/entity.go
package offers

import (
	"time"

	"github.com/your-org/smartcart-backend/internal/domain/cart"
)

// Type selects the savings formula for an offer
type Type string

const (
	// TypeCombo gives away one unit per MinQuantity matched units
	TypeCombo Type = "combo"
	// TypePercentage discounts matched lines by DiscountPercent
	TypePercentage Type = "percentage"
	// TypeBulk discounts matched lines once the quantity gate is met
	TypeBulk Type = "bulk"
)

// Offer is one promotional offer. The catalog is static and never
// mutated; offers are joined read-only against cart contents.
type Offer struct {
	ID                 int       `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	Type               Type      `json:"type"`
	DiscountPercent    int       `json:"discount_percent"`
	MinQuantity        int       `json:"min_quantity"`
	ApplicableProducts []string  `json:"applicable_products"`
	ValidUntil         time.Time `json:"valid_until"`
}

// CartOffer is an offer annotated with the cart lines it matched and
// the savings it would produce
type CartOffer struct {
	Offer
	MatchedLines []cart.Line `json:"matched_lines"`
	Savings      int64       `json:"savings"`
}

// CartOffersResult is the full savings view for a cart
type CartOffersResult struct {
	Offers       []CartOffer `json:"offers"`
	TotalSavings int64       `json:"total_savings"`
}
