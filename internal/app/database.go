// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/shoplist-service/config"
	"github.com/guttosm/shoplist-service/internal/circuitbreaker"
	"github.com/guttosm/shoplist-service/internal/repository"
	"github.com/guttosm/shoplist-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds repository-related components.
type DatabaseComponents struct {
	ProductRepo      repository.ProductRepositoryInterface
	ShopRepo         repository.ShopRepositoryInterface
	ShoppingListRepo repository.ShoppingListRepositoryInterface
	LoggingService   service.LoggingService

	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
	ListsCircuitBreaker   *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker

	UserRepo       repository.UserRepositoryInterface
	RoleRepo       repository.RoleRepositoryInterface
	PermissionRepo repository.PermissionRepositoryInterface
	TokenRepo      repository.TokenRepositoryInterface
}

// InitializeDatabase connects to MongoDB and creates the repositories. When
// the database is disabled or unreachable, in-memory repositories are used
// instead so every endpoint keeps working without persistence. Audit logging
// and authentication require MongoDB and stay disabled in that mode.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		log.Info().Msg("MongoDB disabled - using in-memory repositories")
		return newMemoryComponents()
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - using in-memory repositories")
		return newMemoryComponents()
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers. Products and shops are read together on
	// every comparison, so they share one breaker.
	catalogCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-catalog",
	})

	listsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-shopping-lists",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	catalogRepo := repository.NewCatalogRepositoryWithCircuitBreaker(
		repository.NewProductRepository(db),
		repository.NewShopRepository(db),
		catalogCB,
	)
	listRepo := repository.NewShoppingListRepositoryWithCircuitBreaker(
		repository.NewShoppingListRepository(db),
		listsCB,
	)

	// Initialize auth repositories
	userRepo := repository.NewUserRepository(db.Database)
	roleRepo := repository.NewRoleRepository(db.Database)
	permissionRepo := repository.NewPermissionRepository(db.Database)
	tokenRepo := repository.NewTokenRepository(db.Database)

	// Initialize default roles and permissions
	if err := initializeDefaultRolesAndPermissions(roleRepo, permissionRepo); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default roles and permissions")
	}

	return &DatabaseComponents{
		ProductRepo:           catalogRepo,
		ShopRepo:              catalogRepo.Shops(),
		ShoppingListRepo:      listRepo,
		LoggingService:        loggingService,
		CatalogCircuitBreaker: catalogCB,
		ListsCircuitBreaker:   listsCB,
		LogsCircuitBreaker:    logsCB,
		UserRepo:              userRepo,
		RoleRepo:              roleRepo,
		PermissionRepo:        permissionRepo,
		TokenRepo:             tokenRepo,
	}
}

func newMemoryComponents() *DatabaseComponents {
	return &DatabaseComponents{
		ProductRepo:      repository.NewMemoryProductRepository(),
		ShopRepo:         repository.NewMemoryShopRepository(),
		ShoppingListRepo: repository.NewMemoryShoppingListRepository(),
	}
}
