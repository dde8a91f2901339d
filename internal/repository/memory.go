// Package repository provides in-memory fallbacks used when MongoDB is
// disabled. They back the same interfaces as the MongoDB repositories so
// the catalog and comparison endpoints stay functional in local setups.
package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/shoplist-service/internal/domain/model"
)

// MemoryProductRepository is a thread-safe in-memory ProductRepositoryInterface.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]model.Product
}

// NewMemoryProductRepository creates an empty in-memory product repository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[string]model.Product),
	}
}

// Create stores a new product with a generated id.
func (r *MemoryProductRepository) Create(_ context.Context, product model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = primitive.NewObjectID().Hex()
	r.products[product.ID] = product
	return &product, nil
}

// GetByID returns a product, or nil if absent.
func (r *MemoryProductRepository) GetByID(_ context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// List returns products matching the filter, sorted by name.
func (r *MemoryProductRepository) List(_ context.Context, filter ProductFilter) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.products))
	nameNeedle := strings.ToLower(filter.Name)
	for _, p := range r.products {
		if filter.ShopID != "" && p.ShopID != filter.ShopID {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if nameNeedle != "" && !strings.Contains(strings.ToLower(p.Name), nameNeedle) {
			continue
		}
		products = append(products, p)
	}

	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	if filter.Limit > 0 && len(products) > filter.Limit {
		products = products[:filter.Limit]
	}
	return products, nil
}

// Update replaces a product, or returns nil if absent.
func (r *MemoryProductRepository) Update(_ context.Context, id string, product model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return nil, nil
	}
	product.ID = id
	r.products[id] = product
	return &product, nil
}

// Delete removes a product.
func (r *MemoryProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

// MemoryShopRepository is a thread-safe in-memory ShopRepositoryInterface.
type MemoryShopRepository struct {
	mu    sync.RWMutex
	shops map[string]model.Shop
}

// NewMemoryShopRepository creates an empty in-memory shop repository.
func NewMemoryShopRepository() *MemoryShopRepository {
	return &MemoryShopRepository{
		shops: make(map[string]model.Shop),
	}
}

// Create stores a new shop with a generated id.
func (r *MemoryShopRepository) Create(_ context.Context, shop model.Shop) (*model.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	shop.ID = primitive.NewObjectID().Hex()
	r.shops[shop.ID] = shop
	return &shop, nil
}

// GetByID returns a shop, or nil if absent.
func (r *MemoryShopRepository) GetByID(_ context.Context, id string) (*model.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shop, ok := r.shops[id]
	if !ok {
		return nil, nil
	}
	return &shop, nil
}

// List returns all shops sorted by name.
func (r *MemoryShopRepository) List(_ context.Context) ([]model.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shops := make([]model.Shop, 0, len(r.shops))
	for _, s := range r.shops {
		shops = append(shops, s)
	}
	sort.Slice(shops, func(i, j int) bool { return shops[i].Name < shops[j].Name })
	return shops, nil
}

// Update replaces a shop, or returns nil if absent.
func (r *MemoryShopRepository) Update(_ context.Context, id string, shop model.Shop) (*model.Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.shops[id]; !ok {
		return nil, nil
	}
	shop.ID = id
	r.shops[id] = shop
	return &shop, nil
}

// Delete removes a shop.
func (r *MemoryShopRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shops, id)
	return nil
}

// MemoryShoppingListRepository is a thread-safe in-memory ShoppingListRepositoryInterface.
type MemoryShoppingListRepository struct {
	mu    sync.RWMutex
	lists map[string]model.ShoppingList
}

// NewMemoryShoppingListRepository creates an empty in-memory shopping list repository.
func NewMemoryShoppingListRepository() *MemoryShoppingListRepository {
	return &MemoryShoppingListRepository{
		lists: make(map[string]model.ShoppingList),
	}
}

func copyList(list model.ShoppingList) model.ShoppingList {
	items := make([]model.ShoppingListItem, len(list.Items))
	copy(items, list.Items)
	list.Items = items
	return list
}

// Create stores a new list, assigning list and item ids.
func (r *MemoryShoppingListRepository) Create(_ context.Context, list model.ShoppingList) (*model.ShoppingList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list = copyList(list)
	list.ID = primitive.NewObjectID().Hex()
	for i := range list.Items {
		list.Items[i].ID = primitive.NewObjectID().Hex()
	}
	r.lists[list.ID] = list

	out := copyList(list)
	return &out, nil
}

// GetByID returns a list, or nil if absent.
func (r *MemoryShoppingListRepository) GetByID(_ context.Context, id string) (*model.ShoppingList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, ok := r.lists[id]
	if !ok {
		return nil, nil
	}
	out := copyList(list)
	return &out, nil
}

// ListByOwner returns lists for the given owner. An empty owner returns all.
func (r *MemoryShoppingListRepository) ListByOwner(_ context.Context, ownerID string) ([]model.ShoppingList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lists := make([]model.ShoppingList, 0, len(r.lists))
	for _, l := range r.lists {
		if ownerID != "" && l.OwnerID != ownerID {
			continue
		}
		lists = append(lists, copyList(l))
	}
	sort.Slice(lists, func(i, j int) bool { return lists[i].ID < lists[j].ID })
	return lists, nil
}

// Rename changes a list's name, or returns nil if absent.
func (r *MemoryShoppingListRepository) Rename(_ context.Context, id, name string) (*model.ShoppingList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[id]
	if !ok {
		return nil, nil
	}
	list.Name = name
	r.lists[id] = list

	out := copyList(list)
	return &out, nil
}

// Delete removes a list.
func (r *MemoryShoppingListRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.lists, id)
	return nil
}

// AddItem appends an item with a generated id, or returns nil if the list
// is absent.
func (r *MemoryShoppingListRepository) AddItem(_ context.Context, listID string, item model.ShoppingListItem) (*model.ShoppingList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[listID]
	if !ok {
		return nil, nil
	}
	list = copyList(list)
	item.ID = primitive.NewObjectID().Hex()
	list.Items = append(list.Items, item)
	r.lists[listID] = list

	out := copyList(list)
	return &out, nil
}

// UpdateItem replaces an item in place, or returns nil if the list or item
// is absent.
func (r *MemoryShoppingListRepository) UpdateItem(_ context.Context, listID string, item model.ShoppingListItem) (*model.ShoppingList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[listID]
	if !ok {
		return nil, nil
	}
	list = copyList(list)
	for i := range list.Items {
		if list.Items[i].ID == item.ID {
			list.Items[i] = item
			r.lists[listID] = list
			out := copyList(list)
			return &out, nil
		}
	}
	return nil, nil
}

// RemoveItem deletes an item, or returns nil if the list is absent.
func (r *MemoryShoppingListRepository) RemoveItem(_ context.Context, listID, itemID string) (*model.ShoppingList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[listID]
	if !ok {
		return nil, nil
	}
	list = copyList(list)
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			list.Items = append(list.Items[:i], list.Items[i+1:]...)
			break
		}
	}
	r.lists[listID] = list

	out := copyList(list)
	return &out, nil
}
