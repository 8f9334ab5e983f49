// internal/domain/navigation/service.go
package navigation

import (
	"fmt"

	"github.com/your-org/smartcart-backend/internal/domain/catalog"
)

// Entrance fallback used when the shopper's position is unknown
var fallbackStart = catalog.Coordinate{Lat: 12.9716, Lng: 77.5946}

const mapZoom = 18

// Service builds navigation routes against the product catalog
type Service struct {
	catalog *catalog.Service
}

// NewService creates the navigation service
func NewService(catalogService *catalog.Service) *Service {
	return &Service{catalog: catalogService}
}

// Route guides the shopper from start to the named product. A nil start
// falls back to the store entrance. The path is a straight two-point
// polyline; no in-store pathfinding is attempted.
func (s *Service) Route(productName string, start *catalog.Coordinate) (*Route, error) {
	product, err := s.catalog.FindByName(productName)
	if err != nil {
		return nil, fmt.Errorf("navigation target: %w", err)
	}

	from := fallbackStart
	if start != nil {
		from = *start
	}

	path := []catalog.Coordinate{from, product.Location.Coordinates}

	return &Route{
		Product:  *product,
		Start:    from,
		Path:     path,
		Steps:    steps(product.Location),
		Location: product.Location,
		Map: MapView{
			Center: from,
			Zoom:   mapZoom,
			Markers: []Marker{
				{Label: "You are here", Coordinate: from},
				{Label: product.Name, Coordinate: product.Location.Coordinates},
			},
			Path: path,
		},
	}, nil
}

func steps(location catalog.StoreLocation) []string {
	return []string{
		fmt.Sprintf("Walk towards Aisle %s", location.Aisle),
		fmt.Sprintf("Go to Shelf %s", location.Shelf),
		fmt.Sprintf("Find Rack %s", location.Rack),
		fmt.Sprintf("Look on the %s side", location.Position),
		"You have reached your destination",
	}
}
