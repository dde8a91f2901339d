// Package app provides service initialization.
package app

import (
	"github.com/guttosm/shoplist-service/config"
	"github.com/guttosm/shoplist-service/internal/service"
	"github.com/guttosm/shoplist-service/internal/service/cache"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Pricing       service.PricingService
	Catalog       service.CatalogService
	ShoppingLists service.ShoppingListService
	ResultCache   cache.Cache
}

// InitializeServices wires the comparison, catalog and shopping list
// services on top of the repositories. Catalog and list mutations
// invalidate cached comparison results through the pricing service.
func InitializeServices(cfg config.CacheConfig, db *DatabaseComponents) *ServiceComponents {
	var resultCache cache.Cache
	if cfg.Size > 0 {
		resultCache = service.NewShardedCache(cfg.Size, cfg.TTL, cfg.Shards)
	}

	pricing := service.NewPricingService(
		db.ShoppingListRepo,
		db.ProductRepo,
		db.ShopRepo,
		service.NewComparatorService(),
		resultCache,
	)

	return &ServiceComponents{
		Pricing:       pricing,
		Catalog:       service.NewCatalogService(db.ProductRepo, db.ShopRepo, pricing),
		ShoppingLists: service.NewShoppingListService(db.ShoppingListRepo, pricing),
		ResultCache:   resultCache,
	}
}
