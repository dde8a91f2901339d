// Package app provides router configuration.
package app

import (
	"github.com/guttosm/shoplist-service/config"
	"github.com/guttosm/shoplist-service/internal/http"
	"github.com/guttosm/shoplist-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.CatalogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_catalog", dbComponents.CatalogCircuitBreaker)
		}
		if dbComponents.ListsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_shopping_lists", dbComponents.ListsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	var loggingService service.LoggingService

	// Initialize authentication service
	var authService service.AuthService
	var permissionService service.PermissionService
	var roleService service.RoleService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		if dbComponents.UserRepo != nil {
			authService = service.NewAuthService(
				dbComponents.UserRepo,
				dbComponents.RoleRepo,
				dbComponents.TokenRepo,
				cfg.Auth,
			)
		}
		if dbComponents.PermissionRepo != nil {
			permissionService = service.NewPermissionService(dbComponents.PermissionRepo)
		}
		if dbComponents.RoleRepo != nil {
			roleService = service.NewRoleService(dbComponents.RoleRepo)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:           cfg.Server.RateLimit,
		RateWindow:          cfg.Server.RateWindow,
		EnableAuth:          cfg.Auth.Enabled,
		APIKeys:             cfg.Auth.APIKeys,
		EnableIdempotency:   true,
		CORSOrigins:         cfg.Server.CORSOrigins,
		SwaggerUser:         cfg.Server.SwaggerUser,
		SwaggerPass:         cfg.Server.SwaggerPass,
		LoggingService:      loggingService,
		AuthService:         authService,
		RoleService:         roleService,
		PermissionService:   permissionService,
		CatalogService:      services.Catalog,
		ShoppingListService: services.ShoppingLists,
		PricingService:      services.Pricing,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
