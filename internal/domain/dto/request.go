// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/shoplist-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// CreateShopRequest represents the JSON request body for creating a shop.
//
// @Description Request to register a new shop
type CreateShopRequest struct {
	// Name is the shop's display name. Required.
	Name string `json:"name" binding:"required" example:"Central Market"`
	// Location is an optional free-form address.
	Location string `json:"location,omitempty" example:"Av. Corrientes 1234"`
} // @name CreateShopRequest

// Validate performs custom validation on the request.
func (r *CreateShopRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Message: "must not be blank"}
	}
	return nil
}

// ToModel converts the request to a domain shop.
func (r *CreateShopRequest) ToModel() model.Shop {
	return model.Shop{
		Name:     strings.TrimSpace(r.Name),
		Location: r.Location,
	}
}

// CreateProductRequest represents the JSON request body for creating or
// updating a product.
//
// @Description Request to add a product to a shop's catalog
// @Example {"name": "Whole Milk 1L", "price": 2.50, "shopId": "64f1c0a2e4b0a1b2c3d4e5f6"}
type CreateProductRequest struct {
	// Name is the product's display name. Required.
	Name string `json:"name" binding:"required" example:"Whole Milk 1L"`
	// Price is the unit price. Must not be negative.
	Price decimal.Decimal `json:"price" binding:"required" swaggertype:"number" example:"2.50"`
	// ShopID references the shop selling this product. Required.
	ShopID string `json:"shopId" binding:"required" example:"64f1c0a2e4b0a1b2c3d4e5f6"`
	// Category is an optional grouping label.
	Category string `json:"category,omitempty" example:"dairy"`
	// Description is optional free-form text.
	Description string `json:"description,omitempty"`
	// Location is an optional in-store location hint.
	Location string `json:"location,omitempty" example:"aisle 3"`
} // @name CreateProductRequest

// Validate performs custom validation on the request.
func (r *CreateProductRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Message: "must not be blank"}
	}
	if r.Price.IsNegative() {
		return &ValidationError{Field: "price", Message: "must not be negative"}
	}
	if r.ShopID == "" {
		return &ValidationError{Field: "shopId", Message: "is required"}
	}
	return nil
}

// ToModel converts the request to a domain product.
func (r *CreateProductRequest) ToModel() model.Product {
	return model.Product{
		Name:        strings.TrimSpace(r.Name),
		Price:       r.Price,
		ShopID:      r.ShopID,
		Category:    r.Category,
		Description: r.Description,
		Location:    r.Location,
	}
}

// ListItemRequest represents one shopping list entry in a request body.
// Malformed entries (blank name, non-positive quantity) are accepted and
// stored; they are reported as unavailable in every comparison instead of
// failing the request.
type ListItemRequest struct {
	// Name is what the user wants to buy.
	Name string `json:"name" example:"Milk"`
	// Quantity is how many units are wanted.
	Quantity int `json:"quantity" example:"2"`
	// ProductID optionally pins the item to a specific catalog product.
	ProductID string `json:"productId,omitempty"`
	// Notes is optional free-form text.
	Notes string `json:"notes,omitempty"`
} // @name ListItemRequest

// ToModel converts the request to a domain list item.
func (r *ListItemRequest) ToModel() model.ShoppingListItem {
	return model.ShoppingListItem{
		Name:      r.Name,
		Quantity:  r.Quantity,
		ProductID: r.ProductID,
		Notes:     r.Notes,
	}
}

// CreateShoppingListRequest represents the JSON request body for creating
// a shopping list.
//
// @Description Request to create a shopping list with optional initial items
// @Example {"name": "Weekly groceries", "items": [{"name": "Milk", "quantity": 2}]}
type CreateShoppingListRequest struct {
	// Name is the list's display name. Required.
	Name string `json:"name" binding:"required" example:"Weekly groceries"`
	// Items is the optional initial set of entries.
	Items []ListItemRequest `json:"items,omitempty"`
} // @name CreateShoppingListRequest

// Validate performs custom validation on the request.
func (r *CreateShoppingListRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Message: "must not be blank"}
	}
	return nil
}

// ToModel converts the request to a domain shopping list.
func (r *CreateShoppingListRequest) ToModel() model.ShoppingList {
	items := make([]model.ShoppingListItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, item.ToModel())
	}
	return model.ShoppingList{
		Name:  strings.TrimSpace(r.Name),
		Items: items,
	}
}

// RenameShoppingListRequest represents the JSON request body for renaming
// a shopping list.
type RenameShoppingListRequest struct {
	// Name is the new display name. Required.
	Name string `json:"name" binding:"required" example:"Monthly run"`
} // @name RenameShoppingListRequest

// Validate performs custom validation on the request.
func (r *RenameShoppingListRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Message: "must not be blank"}
	}
	return nil
}
