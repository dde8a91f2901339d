package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopComparisonRow_Coverage(t *testing.T) {
	tests := []struct {
		name     string
		row      ShopComparisonRow
		expected float64
	}{
		{
			name:     "full coverage",
			row:      ShopComparisonRow{AvailableItems: 4, TotalItems: 4},
			expected: 1,
		},
		{
			name:     "half coverage",
			row:      ShopComparisonRow{AvailableItems: 2, TotalItems: 4},
			expected: 0.5,
		},
		{
			name:     "empty list",
			row:      ShopComparisonRow{AvailableItems: 0, TotalItems: 0},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.row.Coverage(), 1e-9)
		})
	}
}

func TestItemResult_JSONNullPrices(t *testing.T) {
	unavailable := ItemResult{ItemName: "Caviar", Quantity: 1}

	data, err := json.Marshal(unavailable)
	require.NoError(t, err)
	assert.JSONEq(t, `{"itemName":"Caviar","quantity":1,"price":null,"total":null,"available":false}`, string(data))

	price := decimal.RequireFromString("1.20")
	total := decimal.RequireFromString("2.40")
	available := ItemResult{ItemName: "Milk", Quantity: 2, Price: &price, Total: &total, Available: true}

	data, err = json.Marshal(available)
	require.NoError(t, err)
	assert.JSONEq(t, `{"itemName":"Milk","quantity":2,"price":1.2,"total":2.4,"available":true}`, string(data))
}

func TestComparisonResult_JSONNoBestOption(t *testing.T) {
	result := ComparisonResult{Rows: []ShopComparisonRow{}}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows":[],"bestOption":null}`, string(data))
}
