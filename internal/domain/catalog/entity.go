// internal/domain/catalog/entity.go
package catalog

// Coordinate represents a latitude/longitude pair
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StoreLocation describes where a product sits inside the store
type StoreLocation struct {
	Aisle       string     `json:"aisle"`
	Shelf       string     `json:"shelf"`
	Rack        string     `json:"rack"`
	Position    string     `json:"position"`
	Coordinates Coordinate `json:"coordinates"`
}

// Product represents a sellable item known to the recognition model
type Product struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Category string        `json:"category"`
	Price    int64         `json:"price"` // Whole currency units
	Location StoreLocation `json:"location"`
}
