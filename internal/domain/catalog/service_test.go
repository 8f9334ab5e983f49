// internal/domain/catalog/service_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService_LoadsSeedCatalog(t *testing.T) {
	s := NewService()

	assert.Len(t, s.Products(), 15)
}

func TestFindByName(t *testing.T) {
	s := NewService()

	product, err := s.FindByName("Lays")
	require.NoError(t, err)
	assert.Equal(t, int64(20), product.Price)
	assert.Equal(t, "Snacks", product.Category)
	assert.Equal(t, "B", product.Location.Aisle)

	_, err = s.FindByName("Unknown Thing")
	assert.Error(t, err)
}

func TestFindByName_IsExact(t *testing.T) {
	s := NewService()

	// The catalog keys are exact; the classifier emits them verbatim
	_, err := s.FindByName("oreo")
	require.NoError(t, err)

	_, err = s.FindByName("Oreo")
	assert.Error(t, err)
}

func TestHas(t *testing.T) {
	s := NewService()

	assert.True(t, s.Has("Coca Cola"))
	assert.False(t, s.Has("background"))
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "by name substring",
			query:    "fresh",
			expected: []string{"Fresh Milk", "Fresh Vegetables"},
		},
		{
			name:     "by category",
			query:    "beverages",
			expected: []string{"Coca Cola", "Fanta", "Grape nector juice"},
		},
		{
			name:     "case insensitive",
			query:    "LAYS",
			expected: []string{"Lays"},
		},
		{
			name:     "no matches",
			query:    "zzz",
			expected: nil,
		},
	}

	s := NewService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var names []string
			for _, p := range s.Search(tt.query) {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}
