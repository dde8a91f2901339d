// Package service contains the business logic for the shoplist service.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/shoplist-service/internal/domain/model"
	"github.com/guttosm/shoplist-service/internal/metrics"
	"github.com/guttosm/shoplist-service/internal/repository"
	"github.com/guttosm/shoplist-service/internal/service/cache"
)

// ErrListNotFound is returned when a comparison references a shopping list
// that does not exist. It is a distinct failure from an empty catalog, which
// still produces a result.
var ErrListNotFound = errors.New("shopping list not found")

// PricingService runs price comparisons for stored shopping lists. Results
// are cached per list id and invalidated whenever the list changes.
type PricingService interface {
	CompareShoppingListPrices(ctx context.Context, listID string) (model.ComparisonResult, error)
	GetBestShoppingOption(ctx context.Context, listID string) (*model.BestOption, error)
	InvalidateList(listID string)
	InvalidateAll()
}

type pricingService struct {
	lists      repository.ShoppingListRepositoryInterface
	products   repository.ProductRepositoryInterface
	shops      repository.ShopRepositoryInterface
	comparator PriceComparator
	cache      cache.Cache
}

// NewPricingService creates a pricing service. The cache may be nil, in
// which case every call recomputes the comparison.
func NewPricingService(
	lists repository.ShoppingListRepositoryInterface,
	products repository.ProductRepositoryInterface,
	shops repository.ShopRepositoryInterface,
	comparator PriceComparator,
	resultCache cache.Cache,
) PricingService {
	return &pricingService{
		lists:      lists,
		products:   products,
		shops:      shops,
		comparator: comparator,
		cache:      resultCache,
	}
}

// CompareShoppingListPrices evaluates the list against every shop in the
// catalog and returns one row per shop plus the best overall option.
func (s *pricingService) CompareShoppingListPrices(ctx context.Context, listID string) (model.ComparisonResult, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(listID); ok {
			return cached, nil
		}
	}

	start := time.Now()

	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		metrics.RecordPriceComparison(time.Since(start), "error", 0)
		return model.ComparisonResult{}, fmt.Errorf("fetch shopping list: %w", err)
	}
	if list == nil {
		metrics.RecordPriceComparison(time.Since(start), "not_found", 0)
		return model.ComparisonResult{}, ErrListNotFound
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		metrics.RecordPriceComparison(time.Since(start), "error", 0)
		return model.ComparisonResult{}, err
	}

	result := s.comparator.Compare(*list, catalog)

	metrics.RecordPriceComparison(time.Since(start), "success", len(result.Rows))
	log.Debug().
		Str("list_id", listID).
		Int("shops", len(result.Rows)).
		Bool("has_best", result.Best != nil).
		Dur("duration", time.Since(start)).
		Msg("Price comparison completed")

	if s.cache != nil {
		s.cache.Set(listID, result)
	}
	return result, nil
}

// GetBestShoppingOption returns only the winning shop for a list, or nil
// when no shop covers any item.
func (s *pricingService) GetBestShoppingOption(ctx context.Context, listID string) (*model.BestOption, error) {
	result, err := s.CompareShoppingListPrices(ctx, listID)
	if err != nil {
		return nil, err
	}
	return result.Best, nil
}

// InvalidateList drops the cached comparison for one list. Called after any
// mutation of the list itself.
func (s *pricingService) InvalidateList(listID string) {
	if s.cache != nil {
		s.cache.Invalidate(listID)
	}
}

// InvalidateAll drops every cached comparison. Called after catalog
// mutations, since a product or shop change can affect any list.
func (s *pricingService) InvalidateAll() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// loadCatalog fetches all shops and products and groups products under
// their shop. Products pointing at unknown shops are dropped; shops with no
// products are kept so they still appear as all-unavailable rows.
func (s *pricingService) loadCatalog(ctx context.Context) ([]model.ShopCatalog, error) {
	shops, err := s.shops.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch shops: %w", err)
	}

	products, err := s.products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	return IndexProducts(shops, products), nil
}
