package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shoplist-service/internal/service"
)

// ListRoutes handles shopping list and comparison route registration.
type ListRoutes struct {
	lists      *ShoppingListsHandler
	comparison *Handler
}

// NewListRoutes creates a new ListRoutes instance.
func NewListRoutes(lists service.ShoppingListService, pricing service.PricingService) *ListRoutes {
	return &ListRoutes{
		lists:      NewShoppingListsHandler(lists),
		comparison: NewHandler(pricing),
	}
}

// RegisterPublicRoutes registers list and comparison routes without
// authorization checks (when auth is disabled).
func (r *ListRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/shopping-lists", r.lists.ListLists)
	rg.POST("/shopping-lists", r.lists.CreateList)
	rg.GET("/shopping-lists/:id", r.lists.GetList)
	rg.PUT("/shopping-lists/:id", r.lists.RenameList)
	rg.DELETE("/shopping-lists/:id", r.lists.DeleteList)

	rg.POST("/shopping-lists/:id/items", r.lists.AddItem)
	rg.PUT("/shopping-lists/:id/items/:itemId", r.lists.UpdateItem)
	rg.DELETE("/shopping-lists/:id/items/:itemId", r.lists.RemoveItem)

	rg.GET("/shopping-lists/:id/compare", r.comparison.CompareShoppingList)
	rg.GET("/shopping-lists/:id/compare/best", r.comparison.GetBestOption)
}

// RegisterProtectedRoutes registers list and comparison routes guarded by
// the lists read/write permissions (when auth is enabled).
func (r *ListRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
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

	registerRead("/shopping-lists", r.lists.ListLists)
	registerRead("/shopping-lists/:id", r.lists.GetList)
	registerWrite(protected.POST, "/shopping-lists", r.lists.CreateList)
	registerWrite(protected.PUT, "/shopping-lists/:id", r.lists.RenameList)
	registerWrite(protected.DELETE, "/shopping-lists/:id", r.lists.DeleteList)

	registerWrite(protected.POST, "/shopping-lists/:id/items", r.lists.AddItem)
	registerWrite(protected.PUT, "/shopping-lists/:id/items/:itemId", r.lists.UpdateItem)
	registerWrite(protected.DELETE, "/shopping-lists/:id/items/:itemId", r.lists.RemoveItem)

	registerRead("/shopping-lists/:id/compare", r.comparison.CompareShoppingList)
	registerRead("/shopping-lists/:id/compare/best", r.comparison.GetBestOption)
}

// getPermissionIDs fetches list permission IDs from the permission service.
func (r *ListRoutes) getPermissionIDs(cfg *RouterConfig) (readPermID, writePermID string) {
	if cfg.PermissionService == nil {
		return "", ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	readPermID = cfg.PermissionService.GetPermissionIDByResourceAndAction(ctx, "lists", "read")
	writePermID = cfg.PermissionService.GetPermissionIDByResourceAndAction(ctx, "lists", "write")

	return readPermID, writePermID
}

// GetComparisonHandler returns the underlying comparison handler.
func (r *ListRoutes) GetComparisonHandler() *Handler {
	return r.comparison
}
