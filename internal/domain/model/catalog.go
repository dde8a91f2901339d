// Package model defines the core domain entities for the shoplist service.
package model

import "github.com/shopspring/decimal"

// Shop represents a vendor that owns a catalog of products.
type Shop struct {
	// ID is the opaque shop identifier.
	ID string `json:"id" example:"64f1c0a2e4b0a1b2c3d4e5f6"`
	// Name is the shop's display name.
	Name string `json:"name" example:"Central Market"`
	// Location is a free-text location string.
	Location string `json:"location,omitempty" example:"Av. Corrientes 1234"`
}

// Product represents a catalog item owned by a single shop.
//
// Products are immutable for the duration of one comparison run.
type Product struct {
	// ID is the opaque product identifier.
	ID string `json:"id" example:"64f1c0a2e4b0a1b2c3d4e5f7"`
	// Name is the product's display name.
	Name string `json:"name" example:"Whole Milk 1L"`
	// Price is the non-negative unit price.
	Price decimal.Decimal `json:"price" swaggertype:"number" example:"2.50"`
	// ShopID references the owning shop.
	ShopID string `json:"shopId" example:"64f1c0a2e4b0a1b2c3d4e5f6"`
	// Category is an optional category tag.
	Category string `json:"category,omitempty" example:"dairy"`
	// Description is optional free text.
	Description string `json:"description,omitempty"`
	// Location is an optional in-shop location string (e.g. aisle).
	Location string `json:"location,omitempty"`
}

// ShopCatalog groups one shop with its products, the snapshot unit the
// comparison core consumes.
type ShopCatalog struct {
	Shop     Shop      `json:"shop"`
	Products []Product `json:"products"`
}
