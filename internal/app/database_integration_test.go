//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/shoplist-service/config"
	"github.com/guttosm/shoplist-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database names for each subtest
	uri := getSharedContainerURI()

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg)

		require.NotNil(t, components)
		assert.NotNil(t, components.ProductRepo)
		assert.NotNil(t, components.ShopRepo)
		assert.NotNil(t, components.ShoppingListRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.CatalogCircuitBreaker)
		assert.NotNil(t, components.ListsCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)
	})

	t.Run("initialize with disabled database falls back to memory", func(t *testing.T) {
		t.Parallel()
		cfg := config.DatabaseConfig{
			Enabled: false,
		}

		components := InitializeDatabase(cfg)
		require.NotNil(t, components)
		assert.NotNil(t, components.ProductRepo)
		assert.Nil(t, components.LoggingService)
		assert.Nil(t, components.CatalogCircuitBreaker)
	})

	t.Run("catalog round trip through protected repositories", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg)
		require.NotNil(t, components)

		shop, err := components.ShopRepo.Create(ctx, model.Shop{Name: "Integration Shop"})
		require.NoError(t, err)
		require.NotEmpty(t, shop.ID)

		product, err := components.ProductRepo.Create(ctx, model.Product{
			Name:   "Bread",
			ShopID: shop.ID,
			Price:  decimal.RequireFromString("1.20"),
		})
		require.NoError(t, err)

		fetched, err := components.ProductRepo.GetByID(ctx, product.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.True(t, fetched.Price.Equal(decimal.RequireFromString("1.20")))
	})

	t.Run("circuit breaker integration", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 2,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          100 * time.Millisecond,
		}

		components := InitializeDatabase(cfg)
		require.NotNil(t, components)

		// Verify circuit breakers are initialized
		stats := components.CatalogCircuitBreaker.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)

		logsStats := components.LogsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", logsStats.State)
		assert.True(t, logsStats.IsHealthy)
	})
}
