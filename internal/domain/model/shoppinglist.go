package model

import "strings"

// ShoppingListItem is one named, quantified entry of a shopping list.
type ShoppingListItem struct {
	// ID is the opaque item identifier.
	ID string `json:"id,omitempty"`
	// Name is the human-entered item label.
	Name string `json:"name" example:"Milk"`
	// Quantity is the desired quantity. Always a positive integer for a
	// well-formed item; non-positive values mark the line malformed and it
	// is treated as unavailable at every shop.
	Quantity int `json:"quantity" example:"2"`
	// ProductID optionally references a concrete catalog product, set when
	// the item was added from a catalog browse rather than typed freely.
	ProductID string `json:"productId,omitempty"`
	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`
}

// Valid reports whether the item is well-formed enough to be matched
// against a catalog. Malformed lines never abort a comparison; they are
// simply unavailable everywhere.
func (i ShoppingListItem) Valid() bool {
	return strings.TrimSpace(i.Name) != "" && i.Quantity > 0
}

// ShoppingList is a user-owned collection of items to be priced across shops.
// Item order is display-only and has no effect on comparison results.
type ShoppingList struct {
	ID      string             `json:"id"`
	Name    string             `json:"name" example:"Weekly groceries"`
	OwnerID string             `json:"ownerId,omitempty"`
	Items   []ShoppingListItem `json:"items"`
}
