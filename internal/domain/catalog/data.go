// internal/domain/catalog/data.go
package catalog

// seedProducts is the static product catalog loaded at startup. The first
// nine names match the classes the recognition model was trained on; the
// rest exist only for store navigation.
var seedProducts = []Product{
	{
		ID:       1,
		Name:     "Coca Cola",
		Category: "Beverages",
		Price:    35,
		Location: StoreLocation{Aisle: "A", Shelf: "1", Rack: "1", Position: "left", Coordinates: Coordinate{Lat: 12.9716, Lng: 77.5946}},
	},
	{
		ID:       2,
		Name:     "Fanta",
		Category: "Beverages",
		Price:    35,
		Location: StoreLocation{Aisle: "A", Shelf: "1", Rack: "1", Position: "center", Coordinates: Coordinate{Lat: 12.9717, Lng: 77.5947}},
	},
	{
		ID:       3,
		Name:     "Grape nector juice",
		Category: "Beverages",
		Price:    60,
		Location: StoreLocation{Aisle: "A", Shelf: "1", Rack: "2", Position: "left", Coordinates: Coordinate{Lat: 12.9718, Lng: 77.5948}},
	},
	{
		ID:       4,
		Name:     "Lays",
		Category: "Snacks",
		Price:    20,
		Location: StoreLocation{Aisle: "B", Shelf: "2", Rack: "1", Position: "left", Coordinates: Coordinate{Lat: 12.9719, Lng: 77.5949}},
	},
	{
		ID:       5,
		Name:     "Pringles",
		Category: "Snacks",
		Price:    90,
		Location: StoreLocation{Aisle: "B", Shelf: "2", Rack: "1", Position: "center", Coordinates: Coordinate{Lat: 12.9720, Lng: 77.5950}},
	},
	{
		ID:       6,
		Name:     "Colgate toothpaste",
		Category: "Personal Care",
		Price:    40,
		Location: StoreLocation{Aisle: "C", Shelf: "3", Rack: "1", Position: "left", Coordinates: Coordinate{Lat: 12.9721, Lng: 77.5951}},
	},
	{
		ID:       7,
		Name:     "Lifebuoy soap",
		Category: "Personal Care",
		Price:    25,
		Location: StoreLocation{Aisle: "C", Shelf: "3", Rack: "2", Position: "center", Coordinates: Coordinate{Lat: 12.9722, Lng: 77.5952}},
	},
	{
		ID:       8,
		Name:     "Chocolate Chip",
		Category: "Confectionery",
		Price:    50,
		Location: StoreLocation{Aisle: "D", Shelf: "4", Rack: "1", Position: "left", Coordinates: Coordinate{Lat: 12.9723, Lng: 77.5953}},
	},
	{
		ID:       9,
		Name:     "oreo",
		Category: "Confectionery",
		Price:    45,
		Location: StoreLocation{Aisle: "D", Shelf: "4", Rack: "1", Position: "center", Coordinates: Coordinate{Lat: 12.9724, Lng: 77.5954}},
	},
	{
		ID:       10,
		Name:     "Fresh Milk",
		Category: "Dairy",
		Price:    55,
		Location: StoreLocation{Aisle: "E", Shelf: "1", Rack: "1", Position: "left", Coordinates: Coordinate{Lat: 12.9725, Lng: 77.5955}},
	},
	{
		ID:       11,
		Name:     "Whole Wheat Bread",
		Category: "Bakery",
		Price:    40,
		Location: StoreLocation{Aisle: "F", Shelf: "1", Rack: "1", Position: "left", Coordinates: Coordinate{Lat: 12.9726, Lng: 77.5956}},
	},
	{
		ID:       12,
		Name:     "Organic Eggs",
		Category: "Dairy",
		Price:    120,
		Location: StoreLocation{Aisle: "E", Shelf: "1", Rack: "2", Position: "center", Coordinates: Coordinate{Lat: 12.9727, Lng: 77.5957}},
	},
	{
		ID:       13,
		Name:     "Fresh Vegetables",
		Category: "Produce",
		Price:    80,
		Location: StoreLocation{Aisle: "G", Shelf: "1", Rack: "1", Position: "left", Coordinates: Coordinate{Lat: 12.9728, Lng: 77.5958}},
	},
	{
		ID:       14,
		Name:     "Canned Beans",
		Category: "Canned Goods",
		Price:    65,
		Location: StoreLocation{Aisle: "H", Shelf: "2", Rack: "1", Position: "left", Coordinates: Coordinate{Lat: 12.9729, Lng: 77.5959}},
	},
	{
		ID:       15,
		Name:     "Rice",
		Category: "Grains",
		Price:    150,
		Location: StoreLocation{Aisle: "I", Shelf: "1", Rack: "1", Position: "left", Coordinates: Coordinate{Lat: 12.9730, Lng: 77.5960}},
	},
}
