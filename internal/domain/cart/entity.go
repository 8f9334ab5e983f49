// internal/domain/cart/entity.go
package cart

import "time"

// Line represents one aggregated cart entry per distinct product
type Line struct {
	Name     string    `json:"name"`
	Price    int64     `json:"price"` // Unit price at time of adding
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

// Cart represents a shopper's session cart (stored in Redis as JSON)
type Cart struct {
	SessionID string    `json:"session_id"`
	Lines     []Line    `json:"lines"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Totals represents calculated cart totals
type Totals struct {
	LineCount     int   `json:"line_count"`     // Number of distinct products
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	TotalAmount   int64 `json:"total_amount"`   // Sum of price * quantity
}

// AddOrIncrement adds one unit of the named product to the cart.
// An existing line's quantity is bumped; there is never more than one
// line per product name.
func (c *Cart) AddOrIncrement(name string, price int64, now time.Time) {
	for i := range c.Lines {
		if c.Lines[i].Name == name {
			c.Lines[i].Quantity++
			c.UpdatedAt = now
			return
		}
	}

	c.Lines = append(c.Lines, Line{
		Name:     name,
		Price:    price,
		Quantity: 1,
		AddedAt:  now,
	})
	c.UpdatedAt = now
}

// Clear removes all lines from the cart
func (c *Cart) Clear(now time.Time) {
	c.Lines = nil
	c.UpdatedAt = now
}

// Total returns the sum of unit price times quantity over all lines
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Price * int64(line.Quantity)
	}
	return total
}

// CalculateTotals returns the aggregate summary for the cart
func (c *Cart) CalculateTotals() Totals {
	var totals Totals

	totals.LineCount = len(c.Lines)
	for _, line := range c.Lines {
		totals.TotalQuantity += line.Quantity
		totals.TotalAmount += line.Price * int64(line.Quantity)
	}

	return totals
}

// ProductNames returns the distinct product names currently in the cart
func (c *Cart) ProductNames() []string {
	names := make([]string, 0, len(c.Lines))
	for _, line := range c.Lines {
		names = append(names, line.Name)
	}
	return names
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
