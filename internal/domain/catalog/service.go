// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"strings"
)

// Service provides read-only access to the product catalog. The catalog
// is loaded once at startup and never mutated afterwards.
type Service struct {
	products []Product
	byName   map[string]*Product
}

// NewService creates a catalog service from the static seed data
func NewService() *Service {
	return newServiceWith(seedProducts)
}

func newServiceWith(products []Product) *Service {
	s := &Service{
		products: products,
		byName:   make(map[string]*Product, len(products)),
	}
	for i := range s.products {
		s.byName[s.products[i].Name] = &s.products[i]
	}
	return s
}

// Products returns every product in the catalog
func (s *Service) Products() []Product {
	return s.products
}

// FindByName looks up a product by its exact name
func (s *Service) FindByName(name string) (*Product, error) {
	product, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("product %q not found in catalog", name)
	}
	return product, nil
}

// Has reports whether the catalog contains a product with the given name
func (s *Service) Has(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Search returns products whose name or category contains the query,
// case-insensitive. An empty query matches everything.
func (s *Service) Search(query string) []Product {
	query = strings.ToLower(query)

	var matches []Product
	for _, product := range s.products {
		if strings.Contains(strings.ToLower(product.Name), query) ||
			strings.Contains(strings.ToLower(product.Category), query) {
			matches = append(matches, product)
		}
	}
	return matches
}
