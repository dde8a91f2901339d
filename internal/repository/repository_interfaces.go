// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/shoplist-service/internal/domain/model"
)

// ProductRepositoryInterface defines the interface for product catalog operations.
type ProductRepositoryInterface interface {
	Create(ctx context.Context, product model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	Update(ctx context.Context, id string, product model.Product) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductFilter narrows product listings. Zero values mean no filtering.
type ProductFilter struct {
	ShopID   string
	Category string
	Name     string
	Limit    int
}

// ShopRepositoryInterface defines the interface for shop operations.
type ShopRepositoryInterface interface {
	Create(ctx context.Context, shop model.Shop) (*model.Shop, error)
	GetByID(ctx context.Context, id string) (*model.Shop, error)
	List(ctx context.Context) ([]model.Shop, error)
	Update(ctx context.Context, id string, shop model.Shop) (*model.Shop, error)
	Delete(ctx context.Context, id string) error
}

// ShoppingListRepositoryInterface defines the interface for shopping list operations.
type ShoppingListRepositoryInterface interface {
	Create(ctx context.Context, list model.ShoppingList) (*model.ShoppingList, error)
	GetByID(ctx context.Context, id string) (*model.ShoppingList, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.ShoppingList, error)
	Rename(ctx context.Context, id, name string) (*model.ShoppingList, error)
	Delete(ctx context.Context, id string) error
	AddItem(ctx context.Context, listID string, item model.ShoppingListItem) (*model.ShoppingList, error)
	UpdateItem(ctx context.Context, listID string, item model.ShoppingListItem) (*model.ShoppingList, error)
	RemoveItem(ctx context.Context, listID, itemID string) (*model.ShoppingList, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
