// internal/domain/navigation/service_test.go
package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/smartcart-backend/internal/domain/catalog"
)

func TestRoute_FromEntranceFallback(t *testing.T) {
	s := NewService(catalog.NewService())

	route, err := s.Route("Lays", nil)
	require.NoError(t, err)

	assert.Equal(t, fallbackStart, route.Start)
	assert.Equal(t, "Lays", route.Product.Name)

	// Straight two-point polyline
	require.Len(t, route.Path, 2)
	assert.Equal(t, fallbackStart, route.Path[0])
	assert.Equal(t, route.Product.Location.Coordinates, route.Path[1])

	assert.Equal(t, []string{
		"Walk towards Aisle B",
		"Go to Shelf 2",
		"Find Rack 1",
		"Look on the left side",
		"You have reached your destination",
	}, route.Steps)
}

func TestRoute_FromShopperPosition(t *testing.T) {
	s := NewService(catalog.NewService())
	start := catalog.Coordinate{Lat: 12.9720, Lng: 77.5950}

	route, err := s.Route("Rice", &start)
	require.NoError(t, err)

	assert.Equal(t, start, route.Start)
	assert.Equal(t, start, route.Map.Center)
	assert.Equal(t, 18, route.Map.Zoom)

	require.Len(t, route.Map.Markers, 2)
	assert.Equal(t, "You are here", route.Map.Markers[0].Label)
	assert.Equal(t, start, route.Map.Markers[0].Coordinate)
	assert.Equal(t, "Rice", route.Map.Markers[1].Label)
}

func TestRoute_UnknownProduct(t *testing.T) {
	s := NewService(catalog.NewService())

	_, err := s.Route("Unknown Thing", nil)
	assert.Error(t, err)
}
