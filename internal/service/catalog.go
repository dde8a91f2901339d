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
	// ErrShopNotFound is returned when a shop id does not resolve.
	ErrShopNotFound = errors.New("shop not found")

	// ErrProductNotFound is returned when a product id does not resolve.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProduct is returned when a product fails validation.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInvalidShop is returned when a shop fails validation.
	ErrInvalidShop = errors.New("invalid shop")
)

// CatalogService manages the products and shops that comparisons run
// against. Every mutation invalidates all cached comparison results, since
// a price change can move the best option for any list.
type CatalogService interface {
	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id string, product model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	CreateShop(ctx context.Context, shop model.Shop) (*model.Shop, error)
	GetShop(ctx context.Context, id string) (*model.Shop, error)
	ListShops(ctx context.Context) ([]model.Shop, error)
	UpdateShop(ctx context.Context, id string, shop model.Shop) (*model.Shop, error)
	DeleteShop(ctx context.Context, id string) error
}

type catalogService struct {
	products    repository.ProductRepositoryInterface
	shops       repository.ShopRepositoryInterface
	invalidator CacheInvalidator
}

// CacheInvalidator lets catalog mutations drop stale comparison results
// without the catalog service knowing about the pricing layer.
type CacheInvalidator interface {
	InvalidateAll()
}

// NewCatalogService creates a catalog service. The invalidator may be nil
// when no comparison cache is configured.
func NewCatalogService(
	products repository.ProductRepositoryInterface,
	shops repository.ShopRepositoryInterface,
	invalidator CacheInvalidator,
) CatalogService {
	return &catalogService{
		products:    products,
		shops:       shops,
		invalidator: invalidator,
	}
}

func (s *catalogService) invalidate() {
	if s.invalidator != nil {
		s.invalidator.InvalidateAll()
	}
}

func validateProduct(product model.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if product.Price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidProduct)
	}
	if product.ShopID == "" {
		return fmt.Errorf("%w: shop id is required", ErrInvalidProduct)
	}
	return nil
}

// CreateProduct validates and stores a new product. The referenced shop
// must exist.
func (s *catalogService) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	shop, err := s.shops.GetByID(ctx, product.ShopID)
	if err != nil {
		return nil, fmt.Errorf("verify shop: %w", err)
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.invalidate()
	return created, nil
}

// GetProduct returns a product by id.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListProducts returns products matching the filter.
func (s *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	products, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// UpdateProduct validates and replaces a product.
func (s *catalogService) UpdateProduct(ctx context.Context, id string, product model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	shop, err := s.shops.GetByID(ctx, product.ShopID)
	if err != nil {
		return nil, fmt.Errorf("verify shop: %w", err)
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}

	updated, err := s.products.Update(ctx, id, product)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if updated == nil {
		return nil, ErrProductNotFound
	}

	s.invalidate()
	return updated, nil
}

// DeleteProduct removes a product.
func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.invalidate()
	return nil
}

// CreateShop validates and stores a new shop.
func (s *catalogService) CreateShop(ctx context.Context, shop model.Shop) (*model.Shop, error) {
	if strings.TrimSpace(shop.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidShop)
	}

	created, err := s.shops.Create(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("create shop: %w", err)
	}

	s.invalidate()
	return created, nil
}

// GetShop returns a shop by id.
func (s *catalogService) GetShop(ctx context.Context, id string) (*model.Shop, error) {
	shop, err := s.shops.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch shop: %w", err)
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}
	return shop, nil
}

// ListShops returns all shops.
func (s *catalogService) ListShops(ctx context.Context) ([]model.Shop, error) {
	shops, err := s.shops.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	return shops, nil
}

// UpdateShop validates and replaces a shop.
func (s *catalogService) UpdateShop(ctx context.Context, id string, shop model.Shop) (*model.Shop, error) {
	if strings.TrimSpace(shop.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidShop)
	}

	updated, err := s.shops.Update(ctx, id, shop)
	if err != nil {
		return nil, fmt.Errorf("update shop: %w", err)
	}
	if updated == nil {
		return nil, ErrShopNotFound
	}

	s.invalidate()
	return updated, nil
}

// DeleteShop removes a shop. Its products become orphans and stop
// participating in comparisons.
func (s *catalogService) DeleteShop(ctx context.Context, id string) error {
	if err := s.shops.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete shop: %w", err)
	}
	s.invalidate()
	return nil
}
