package model

import "github.com/shopspring/decimal"

// ItemResult is the per-item outcome of matching one list item against one
// shop's catalog. Price and Total are nil exactly when the item is
// unavailable at the shop.
//
// @Description Per-item comparison outcome for one shop
type ItemResult struct {
	// ItemName is the shopping-list label for this line.
	ItemName string `json:"itemName" example:"Milk"`
	// Quantity is the desired quantity from the list.
	Quantity int `json:"quantity" example:"2"`
	// ProductID identifies the matched product, empty when unavailable.
	ProductID string `json:"productId,omitempty"`
	// Price is the matched unit price, nil when unavailable.
	Price *decimal.Decimal `json:"price" swaggertype:"number"`
	// Total is Price x Quantity, nil when unavailable.
	Total *decimal.Decimal `json:"total" swaggertype:"number"`
	// Available reports whether the shop carries a product satisfying this item.
	Available bool `json:"available"`
}

// ShopComparisonRow is the achievable outcome of buying one shopping list at
// one shop. Constructed fresh per comparison call, never persisted.
//
// @Description Per-shop comparison result for a shopping list
type ShopComparisonRow struct {
	ShopID   string       `json:"shopId"`
	ShopName string       `json:"shopName" example:"Central Market"`
	Items    []ItemResult `json:"items"`
	// TotalPrice is the sum of line totals over available items only,
	// never an estimate for missing ones.
	TotalPrice decimal.Decimal `json:"totalPrice" swaggertype:"number" example:"14.30"`
	// AvailableItems counts the list items this shop can satisfy.
	AvailableItems int `json:"availableItems" example:"5"`
	// TotalItems is the size of the shopping list.
	TotalItems int `json:"totalItems" example:"7"`
}

// Coverage returns the fraction of list items this shop can satisfy.
// A zero-item list has coverage 0, not 1.
func (r ShopComparisonRow) Coverage() float64 {
	if r.TotalItems == 0 {
		return 0
	}
	return float64(r.AvailableItems) / float64(r.TotalItems)
}

// BestOption is the eligible shop (AvailableItems >= 1) with the lowest
// achievable total for the list.
//
// @Description Cheapest eligible shop for the whole list
type BestOption struct {
	ShopID         string          `json:"shopId"`
	ShopName       string          `json:"shopName" example:"Central Market"`
	TotalPrice     decimal.Decimal `json:"totalPrice" swaggertype:"number" example:"12.80"`
	AvailableItems int             `json:"availableItems" example:"6"`
	TotalItems     int             `json:"totalItems" example:"7"`
}

// ComparisonResult bundles all per-shop rows with the selected best option.
// Best is nil when no shop carries any list item — an explicit no-result
// state, not a zero-price row.
type ComparisonResult struct {
	Rows []ShopComparisonRow `json:"rows"`
	Best *BestOption         `json:"bestOption"`
}
