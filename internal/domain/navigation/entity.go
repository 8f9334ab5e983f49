// internal/domain/navigation/entity.go
package navigation

import "github.com/your-org/smartcart-backend/internal/domain/catalog"

// Marker is one labelled point on the store map
type Marker struct {
	Label      string             `json:"label"`
	Coordinate catalog.Coordinate `json:"coordinate"`
}

// MapView is the view model handed to the map-rendering boundary
type MapView struct {
	Center  catalog.Coordinate   `json:"center"`
	Zoom    int                  `json:"zoom"`
	Markers []Marker             `json:"markers"`
	Path    []catalog.Coordinate `json:"path"`
}

// Route is the navigation guide from the shopper's position to a product
type Route struct {
	Product  catalog.Product       `json:"product"`
	Start    catalog.Coordinate    `json:"start"`
	Path     []catalog.Coordinate  `json:"path"`
	Steps    []string              `json:"steps"`
	Map      MapView               `json:"map"`
	Location catalog.StoreLocation `json:"location"`
}
