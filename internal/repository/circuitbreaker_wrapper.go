// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/guttosm/shoplist-service/internal/circuitbreaker"
	"github.com/guttosm/shoplist-service/internal/domain/model"
)

// CatalogRepositoryWithCircuitBreaker wraps the product and shop repositories
// with a shared circuit breaker. The catalog collections are read together on
// every comparison, so they trip and recover as one unit.
type CatalogRepositoryWithCircuitBreaker struct {
	products       ProductRepositoryInterface
	shops          ShopRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCatalogRepositoryWithCircuitBreaker creates a protected catalog repository.
func NewCatalogRepositoryWithCircuitBreaker(products ProductRepositoryInterface, shops ShopRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CatalogRepositoryWithCircuitBreaker {
	return &CatalogRepositoryWithCircuitBreaker{
		products:       products,
		shops:          shops,
		circuitBreaker: cb,
	}
}

// Create inserts a product with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	var result *model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.products.Create(ctx, product)
		return cbErr
	})
	return result, err
}

// GetByID returns a product with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var result *model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.products.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// List returns products with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) List(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	var result []model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.products.List(ctx, filter)
		return cbErr
	})
	return result, err
}

// Update replaces a product with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) Update(ctx context.Context, id string, product model.Product) (*model.Product, error) {
	var result *model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.products.Update(ctx, id, product)
		return cbErr
	})
	return result, err
}

// Delete removes a product with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.products.Delete(ctx, id)
	})
}

// Shops exposes the protected shop repository.
func (r *CatalogRepositoryWithCircuitBreaker) Shops() ShopRepositoryInterface {
	return &shopRepositoryWithCircuitBreaker{
		repo:           r.shops,
		circuitBreaker: r.circuitBreaker,
	}
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CatalogRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

type shopRepositoryWithCircuitBreaker struct {
	repo           ShopRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

func (r *shopRepositoryWithCircuitBreaker) Create(ctx context.Context, shop model.Shop) (*model.Shop, error) {
	var result *model.Shop
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, shop)
		return cbErr
	})
	return result, err
}

func (r *shopRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*model.Shop, error) {
	var result *model.Shop
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

func (r *shopRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.Shop, error) {
	var result []model.Shop
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

func (r *shopRepositoryWithCircuitBreaker) Update(ctx context.Context, id string, shop model.Shop) (*model.Shop, error) {
	var result *model.Shop
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, shop)
		return cbErr
	})
	return result, err
}

func (r *shopRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// ShoppingListRepositoryWithCircuitBreaker wraps a shopping list repository
// with circuit breaker protection.
type ShoppingListRepositoryWithCircuitBreaker struct {
	repo           ShoppingListRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewShoppingListRepositoryWithCircuitBreaker creates a protected shopping list repository.
func NewShoppingListRepositoryWithCircuitBreaker(repo ShoppingListRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ShoppingListRepositoryWithCircuitBreaker {
	return &ShoppingListRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts a list with circuit breaker protection.
func (r *ShoppingListRepositoryWithCircuitBreaker) Create(ctx context.Context, list model.ShoppingList) (*model.ShoppingList, error) {
	var result *model.ShoppingList
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, list)
		return cbErr
	})
	return result, err
}

// GetByID returns a list with circuit breaker protection.
func (r *ShoppingListRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*model.ShoppingList, error) {
	var result *model.ShoppingList
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// ListByOwner returns an owner's lists with circuit breaker protection.
func (r *ShoppingListRepositoryWithCircuitBreaker) ListByOwner(ctx context.Context, ownerID string) ([]model.ShoppingList, error) {
	var result []model.ShoppingList
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListByOwner(ctx, ownerID)
		return cbErr
	})
	return result, err
}

// Rename changes a list name with circuit breaker protection.
func (r *ShoppingListRepositoryWithCircuitBreaker) Rename(ctx context.Context, id, name string) (*model.ShoppingList, error) {
	var result *model.ShoppingList
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Rename(ctx, id, name)
		return cbErr
	})
	return result, err
}

// Delete removes a list with circuit breaker protection.
func (r *ShoppingListRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// AddItem appends an item with circuit breaker protection.
func (r *ShoppingListRepositoryWithCircuitBreaker) AddItem(ctx context.Context, listID string, item model.ShoppingListItem) (*model.ShoppingList, error) {
	var result *model.ShoppingList
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.AddItem(ctx, listID, item)
		return cbErr
	})
	return result, err
}

// UpdateItem replaces an item with circuit breaker protection.
func (r *ShoppingListRepositoryWithCircuitBreaker) UpdateItem(ctx context.Context, listID string, item model.ShoppingListItem) (*model.ShoppingList, error) {
	var result *model.ShoppingList
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.UpdateItem(ctx, listID, item)
		return cbErr
	})
	return result, err
}

// RemoveItem deletes an item with circuit breaker protection.
func (r *ShoppingListRepositoryWithCircuitBreaker) RemoveItem(ctx context.Context, listID, itemID string) (*model.ShoppingList, error) {
	var result *model.ShoppingList
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.RemoveItem(ctx, listID, itemID)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ShoppingListRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
