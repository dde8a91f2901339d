// Package service contains the business logic for the shoplist service.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/guttosm/shoplist-service/internal/domain/model"
	"github.com/guttosm/shoplist-service/internal/repository"
)

var (
	// ErrItemNotFound is returned when a list item id does not resolve.
	ErrItemNotFound = errors.New("list item not found")

	// ErrInvalidList is returned when a shopping list fails validation.
	ErrInvalidList = errors.New("invalid shopping list")
)

// ShoppingListService manages shopping lists and their items. Mutations
// invalidate the cached comparison for the affected list only.
type ShoppingListService interface {
	CreateList(ctx context.Context, list model.ShoppingList) (*model.ShoppingList, error)
	GetList(ctx context.Context, id string) (*model.ShoppingList, error)
	ListsByOwner(ctx context.Context, ownerID string) ([]model.ShoppingList, error)
	RenameList(ctx context.Context, id, name string) (*model.ShoppingList, error)
	DeleteList(ctx context.Context, id string) error
	AddItem(ctx context.Context, listID string, item model.ShoppingListItem) (*model.ShoppingList, error)
	UpdateItem(ctx context.Context, listID string, item model.ShoppingListItem) (*model.ShoppingList, error)
	RemoveItem(ctx context.Context, listID, itemID string) (*model.ShoppingList, error)
}

// ListInvalidator drops the cached comparison for a single list.
type ListInvalidator interface {
	InvalidateList(listID string)
}

type shoppingListService struct {
	lists       repository.ShoppingListRepositoryInterface
	invalidator ListInvalidator
}

// NewShoppingListService creates a shopping list service. The invalidator
// may be nil when no comparison cache is configured.
func NewShoppingListService(
	lists repository.ShoppingListRepositoryInterface,
	invalidator ListInvalidator,
) ShoppingListService {
	return &shoppingListService{
		lists:       lists,
		invalidator: invalidator,
	}
}

func (s *shoppingListService) invalidate(listID string) {
	if s.invalidator != nil {
		s.invalidator.InvalidateList(listID)
	}
}

// CreateList validates and stores a new shopping list. Items are accepted
// as-is: malformed entries are tolerated and simply never match during
// comparison.
func (s *shoppingListService) CreateList(ctx context.Context, list model.ShoppingList) (*model.ShoppingList, error) {
	if strings.TrimSpace(list.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidList)
	}

	created, err := s.lists.Create(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("create shopping list: %w", err)
	}
	return created, nil
}

// GetList returns a shopping list by id.
func (s *shoppingListService) GetList(ctx context.Context, id string) (*model.ShoppingList, error) {
	list, err := s.lists.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch shopping list: %w", err)
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	return list, nil
}

// ListsByOwner returns all lists belonging to an owner.
func (s *shoppingListService) ListsByOwner(ctx context.Context, ownerID string) ([]model.ShoppingList, error) {
	lists, err := s.lists.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list shopping lists: %w", err)
	}
	return lists, nil
}

// RenameList changes a list's display name.
func (s *shoppingListService) RenameList(ctx context.Context, id, name string) (*model.ShoppingList, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidList)
	}

	renamed, err := s.lists.Rename(ctx, id, name)
	if err != nil {
		return nil, fmt.Errorf("rename shopping list: %w", err)
	}
	if renamed == nil {
		return nil, ErrListNotFound
	}
	return renamed, nil
}

// DeleteList removes a shopping list and its cached comparison.
func (s *shoppingListService) DeleteList(ctx context.Context, id string) error {
	if err := s.lists.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete shopping list: %w", err)
	}
	s.invalidate(id)
	return nil
}

// AddItem appends an item to a list.
func (s *shoppingListService) AddItem(ctx context.Context, listID string, item model.ShoppingListItem) (*model.ShoppingList, error) {
	updated, err := s.lists.AddItem(ctx, listID, item)
	if err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}
	if updated == nil {
		return nil, ErrListNotFound
	}

	s.invalidate(listID)
	return updated, nil
}

// UpdateItem replaces an item in a list, matched by item id.
func (s *shoppingListService) UpdateItem(ctx context.Context, listID string, item model.ShoppingListItem) (*model.ShoppingList, error) {
	if item.ID == "" {
		return nil, ErrItemNotFound
	}

	updated, err := s.lists.UpdateItem(ctx, listID, item)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if updated == nil {
		// The repository cannot distinguish a missing list from a missing
		// item; check the list to report the right failure.
		list, lookupErr := s.lists.GetByID(ctx, listID)
		if lookupErr != nil {
			return nil, fmt.Errorf("update item: %w", lookupErr)
		}
		if list == nil {
			return nil, ErrListNotFound
		}
		return nil, ErrItemNotFound
	}

	s.invalidate(listID)
	return updated, nil
}

// RemoveItem deletes an item from a list.
func (s *shoppingListService) RemoveItem(ctx context.Context, listID, itemID string) (*model.ShoppingList, error) {
	updated, err := s.lists.RemoveItem(ctx, listID, itemID)
	if err != nil {
		return nil, fmt.Errorf("remove item: %w", err)
	}
	if updated == nil {
		return nil, ErrListNotFound
	}

	s.invalidate(listID)
	return updated, nil
}
