// internal/domain/cart/entity_test.go
package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCart() *Cart {
	now := time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
	return &Cart{
		SessionID: "test-session",
		Lines:     []Line{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestAddOrIncrement_NewProduct(t *testing.T) {
	c := newTestCart()
	now := time.Now().UTC()

	c.AddOrIncrement("Lays", 20, now)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, "Lays", c.Lines[0].Name)
	assert.Equal(t, int64(20), c.Lines[0].Price)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestAddOrIncrement_RepeatDetectionAggregates(t *testing.T) {
	c := newTestCart()
	now := time.Now().UTC()

	// Showing Lays twice produces one line with quantity 2, total 40
	c.AddOrIncrement("Lays", 20, now)
	c.AddOrIncrement("Lays", 20, now.Add(4*time.Second))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, int64(40), c.Total())
}

func TestAddOrIncrement_DistinctProductsGetOwnLines(t *testing.T) {
	c := newTestCart()
	now := time.Now().UTC()

	c.AddOrIncrement("Lays", 20, now)
	c.AddOrIncrement("Pringles", 90, now)
	c.AddOrIncrement("Lays", 20, now)

	require.Len(t, c.Lines, 2)
	assert.Equal(t, int64(130), c.Total())
}

func TestCalculateTotals(t *testing.T) {
	c := newTestCart()
	now := time.Now().UTC()

	c.AddOrIncrement("Coca Cola", 35, now)
	c.AddOrIncrement("Coca Cola", 35, now)
	c.AddOrIncrement("Rice", 150, now)

	totals := c.CalculateTotals()
	assert.Equal(t, 2, totals.LineCount)
	assert.Equal(t, 3, totals.TotalQuantity)
	assert.Equal(t, int64(220), totals.TotalAmount)
}

func TestClear(t *testing.T) {
	c := newTestCart()
	now := time.Now().UTC()

	c.AddOrIncrement("Lays", 20, now)
	require.False(t, c.IsEmpty())

	c.Clear(now.Add(time.Minute))

	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.Total())
	assert.Equal(t, now.Add(time.Minute), c.UpdatedAt)
}

func TestProductNames(t *testing.T) {
	c := newTestCart()
	now := time.Now().UTC()

	c.AddOrIncrement("Lays", 20, now)
	c.AddOrIncrement("oreo", 45, now)

	assert.Equal(t, []string{"Lays", "oreo"}, c.ProductNames())
}
