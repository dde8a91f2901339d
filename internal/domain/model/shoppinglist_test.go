package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShoppingListItem_Valid(t *testing.T) {
	tests := []struct {
		name     string
		item     ShoppingListItem
		expected bool
	}{
		{
			name:     "valid item",
			item:     ShoppingListItem{Name: "Milk", Quantity: 2},
			expected: true,
		},
		{
			name:     "blank name",
			item:     ShoppingListItem{Name: "   ", Quantity: 2},
			expected: false,
		},
		{
			name:     "empty name",
			item:     ShoppingListItem{Quantity: 2},
			expected: false,
		},
		{
			name:     "zero quantity",
			item:     ShoppingListItem{Name: "Milk", Quantity: 0},
			expected: false,
		},
		{
			name:     "negative quantity",
			item:     ShoppingListItem{Name: "Milk", Quantity: -1},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.item.Valid())
		})
	}
}
