// Package main is the entry point for the shoplist-service application.
//
// @title           Shoplist Service API
// @version         1.0.0
// @description     API for comparing shopping list prices across shops.
//
//	This service manages shops, products and shopping lists, and determines
//	which shop offers the lowest achievable total for a given list.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/shoplist-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Comparisons
// @tag.description Shopping list price comparison operations
//
// @tag.name        Shops
// @tag.description Shop catalog management
//
// @tag.name        Products
// @tag.description Product catalog management
//
// @tag.name        ShoppingLists
// @tag.description Shopping list management
//
// @tag.name        Auth
// @tag.description Authentication and authorization endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/shoplist-service/docs" // swagger docs

	"github.com/guttosm/shoplist-service/config"
	"github.com/guttosm/shoplist-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
