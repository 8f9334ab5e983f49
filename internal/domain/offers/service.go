// internal/domain/offers/service.go
package offers

import (
	"strings"

	"github.com/your-org/smartcart-backend/internal/domain/cart"
)

// Service serves the static offers catalog and computes cart savings
type Service struct {
	offers []Offer
}

// NewService creates the offers service over the seed catalog
func NewService() *Service {
	return &Service{offers: seedOffers}
}

// All returns every offer in the catalog
func (s *Service) All() []Offer {
	return s.offers
}

// ForProduct returns the offers that apply to a single product
func (s *Service) ForProduct(productName string) []Offer {
	matched := []Offer{}
	for _, offer := range s.offers {
		if containsFold(offer.ApplicableProducts, productName) {
			matched = append(matched, offer)
		}
	}
	return matched
}

// ForCart joins the offers catalog against the cart and computes the
// savings each applicable offer would produce. Offers below their
// quantity gate are still listed, with zero savings.
func (s *Service) ForCart(c *cart.Cart) CartOffersResult {
	result := CartOffersResult{Offers: []CartOffer{}}

	for _, offer := range s.offers {
		matched := matchedLines(offer, c)
		if len(matched) == 0 {
			continue
		}

		cartOffer := CartOffer{
			Offer:        offer,
			MatchedLines: matched,
			Savings:      savings(offer, matched),
		}
		result.Offers = append(result.Offers, cartOffer)
		result.TotalSavings += cartOffer.Savings
	}

	return result
}

func matchedLines(offer Offer, c *cart.Cart) []cart.Line {
	matched := []cart.Line{}
	for _, line := range c.Lines {
		if containsFold(offer.ApplicableProducts, line.Name) {
			matched = append(matched, line)
		}
	}
	return matched
}

// savings applies the offer's formula to its matched lines.
//
// combo: one matched unit free per MinQuantity matched units, priced at
// the cheapest matched line. percentage and bulk: DiscountPercent off
// the matched lines once the quantity gate is met.
func savings(offer Offer, matched []cart.Line) int64 {
	quantity := 0
	for _, line := range matched {
		quantity += line.Quantity
	}
	if quantity < offer.MinQuantity || offer.MinQuantity <= 0 {
		return 0
	}

	switch offer.Type {
	case TypeCombo:
		freeUnits := int64(quantity / offer.MinQuantity)
		return freeUnits * cheapestUnitPrice(matched)
	case TypePercentage, TypeBulk:
		var total int64
		for _, line := range matched {
			total += line.Price * int64(line.Quantity)
		}
		return total * int64(offer.DiscountPercent) / 100
	}
	return 0
}

func cheapestUnitPrice(lines []cart.Line) int64 {
	cheapest := lines[0].Price
	for _, line := range lines[1:] {
		if line.Price < cheapest {
			cheapest = line.Price
		}
	}
	return cheapest
}

func containsFold(values []string, value string) bool {
	for _, v := range values {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
