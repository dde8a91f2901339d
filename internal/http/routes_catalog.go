package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shoplist-service/internal/middleware"
	"github.com/guttosm/shoplist-service/internal/service"
)

// CatalogRoutes handles product and shop route registration.
type CatalogRoutes struct {
	products *ProductsHandler
	shops    *ShopsHandler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(catalog service.CatalogService) *CatalogRoutes {
	return &CatalogRoutes{
		products: NewProductsHandler(catalog),
		shops:    NewShopsHandler(catalog),
	}
}

// RegisterPublicRoutes registers catalog routes without authorization checks
// (when auth is disabled).
func (r *CatalogRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/shops", r.shops.ListShops)
	rg.POST("/shops", r.shops.CreateShop)
	rg.GET("/shops/:id", r.shops.GetShop)
	rg.PUT("/shops/:id", r.shops.UpdateShop)
	rg.DELETE("/shops/:id", r.shops.DeleteShop)

	rg.GET("/products", r.products.ListProducts)
	rg.POST("/products", r.products.CreateProduct)
	rg.GET("/products/:id", r.products.GetProduct)
	rg.PUT("/products/:id", r.products.UpdateProduct)
	rg.DELETE("/products/:id", r.products.DeleteProduct)
}

// RegisterProtectedRoutes registers catalog routes guarded by the catalog
// read/write permissions (when auth is enabled).
func (r *CatalogRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	readPermID, writePermID := r.getPermissionIDs(cfg)
	authFor := permissionMiddleware(cfg)

	registerRead := func(path string, handler gin.HandlerFunc) {
		if readAuth := authFor(readPermID); readAuth != nil {
			protected.GET(path, append(readAuth, handler)...)
		} else {
			protected.GET(path, handler)
		}
	}
	registerWrite := func(method func(string, ...gin.HandlerFunc) gin.IRoutes, path string, handler gin.HandlerFunc) {
		if writeAuth := authFor(writePermID); writeAuth != nil {
			method(path, append(writeAuth, handler)...)
		} else {
			method(path, handler)
		}
	}

	registerRead("/shops", r.shops.ListShops)
	registerRead("/shops/:id", r.shops.GetShop)
	registerWrite(protected.POST, "/shops", r.shops.CreateShop)
	registerWrite(protected.PUT, "/shops/:id", r.shops.UpdateShop)
	registerWrite(protected.DELETE, "/shops/:id", r.shops.DeleteShop)

	registerRead("/products", r.products.ListProducts)
	registerRead("/products/:id", r.products.GetProduct)
	registerWrite(protected.POST, "/products", r.products.CreateProduct)
	registerWrite(protected.PUT, "/products/:id", r.products.UpdateProduct)
	registerWrite(protected.DELETE, "/products/:id", r.products.DeleteProduct)
}

// getPermissionIDs fetches catalog permission IDs from the permission service.
func (r *CatalogRoutes) getPermissionIDs(cfg *RouterConfig) (readPermID, writePermID string) {
	if cfg.PermissionService == nil {
		return "", ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	readPermID = cfg.PermissionService.GetPermissionIDByResourceAndAction(ctx, "catalog", "read")
	writePermID = cfg.PermissionService.GetPermissionIDByResourceAndAction(ctx, "catalog", "write")

	return readPermID, writePermID
}

// permissionMiddleware returns a helper that builds authorization middleware
// for a permission id, or nil when authorization is not configured.
func permissionMiddleware(cfg *RouterConfig) func(string) []gin.HandlerFunc {
	return func(permID string) []gin.HandlerFunc {
		if permID != "" && cfg.RoleService != nil && cfg.PermissionService != nil {
			return []gin.HandlerFunc{
				middleware.RequireAuthorization(middleware.AuthorizationConfig{
					RequiredPermissions: []string{permID},
				}, cfg.RoleService, cfg.PermissionService),
			}
		}
		return nil
	}
}
