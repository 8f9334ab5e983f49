// internal/domain/offers/data.go
package offers

import "time"

var offersValidity = time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

// seedOffers is the static promotional catalog. Product references are
// matched against cart lines case-insensitively since the product data
// is not consistent about capitalization.
var seedOffers = []Offer{
	{
		ID:                 1,
		Title:              "Buy 2 Get 1 Free on Beverages",
		Description:        "Get one free beverage when you buy any two from Coca Cola, Fanta, or Grape Nector Juice",
		Category:           "Beverages",
		Type:               TypeCombo,
		DiscountPercent:    33,
		MinQuantity:        2,
		ApplicableProducts: []string{"Coca Cola", "Fanta", "Grape Nector Juice"},
		ValidUntil:         offersValidity,
	},
	{
		ID:                 2,
		Title:              "Snack Attack Combo",
		Description:        "Buy any 2 snacks (Lays, Pringles) and get 20% off on the total",
		Category:           "Snacks",
		Type:               TypePercentage,
		DiscountPercent:    20,
		MinQuantity:        2,
		ApplicableProducts: []string{"Lays", "Pringles"},
		ValidUntil:         offersValidity,
	},
	{
		ID:                 3,
		Title:              "Personal Care Bundle",
		Description:        "Get 15% off when you buy Colgate Toothpaste and Lifebuoy Soap together",
		Category:           "Personal Care",
		Type:               TypePercentage,
		DiscountPercent:    15,
		MinQuantity:        2,
		ApplicableProducts: []string{"Colgate Toothpaste", "Lifebuoy Soap"},
		ValidUntil:         offersValidity,
	},
	{
		ID:                 4,
		Title:              "Sweet Treats Offer",
		Description:        "Buy Chocolate Chip and Oreo together to get 25% off",
		Category:           "Confectionery",
		Type:               TypePercentage,
		DiscountPercent:    25,
		MinQuantity:        2,
		ApplicableProducts: []string{"Chocolate Chip", "Oreo"},
		ValidUntil:         offersValidity,
	},
	{
		ID:                 5,
		Title:              "Dairy Delight",
		Description:        "Get 10% off on Fresh Milk and Organic Eggs combo",
		Category:           "Dairy",
		Type:               TypePercentage,
		DiscountPercent:    10,
		MinQuantity:        2,
		ApplicableProducts: []string{"Fresh Milk", "Organic Eggs"},
		ValidUntil:         offersValidity,
	},
	{
		ID:                 6,
		Title:              "Fresh Produce Special",
		Description:        "Buy Fresh Vegetables worth ₹200 and get 15% off",
		Category:           "Produce",
		Type:               TypeBulk,
		DiscountPercent:    15,
		MinQuantity:        3,
		ApplicableProducts: []string{"Fresh Vegetables"},
		ValidUntil:         offersValidity,
	},
	{
		ID:                 7,
		Title:              "Bakery Bundle",
		Description:        "Get Whole Wheat Bread at 20% off when you buy any dairy product",
		Category:           "Bakery",
		Type:               TypePercentage,
		DiscountPercent:    20,
		MinQuantity:        1,
		ApplicableProducts: []string{"Whole Wheat Bread"},
		ValidUntil:         offersValidity,
	},
	{
		ID:                 8,
		Title:              "Grains & Canned Goods Combo",
		Description:        "Buy Rice and Canned Beans together to get 15% off",
		Category:           "Grains",
		Type:               TypePercentage,
		DiscountPercent:    15,
		MinQuantity:        2,
		ApplicableProducts: []string{"Rice", "Canned Beans"},
		ValidUntil:         offersValidity,
	},
}
