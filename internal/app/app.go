// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/shoplist-service/config"
	"github.com/guttosm/shoplist-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize repositories (MongoDB when enabled, in-memory otherwise)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize business services on top of the repositories
	serviceComponents := InitializeServices(cfg.Cache, dbComponents)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.HealthHandler, routerComponents.Config)
}
