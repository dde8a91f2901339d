package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shoplist-service/internal/i18n"
	"github.com/guttosm/shoplist-service/internal/middleware"
	"github.com/guttosm/shoplist-service/internal/service"
)

// Handler provides HTTP handlers for price comparison routes.
type Handler struct {
	pricing service.PricingService
}

// NewHandler creates a new Handler instance.
func NewHandler(pricing service.PricingService) *Handler {
	return &Handler{pricing: pricing}
}

// respondServiceError translates service-layer errors into HTTP responses.
func respondServiceError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrListNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyListNotFound, err)
	case errors.Is(err, service.ErrShopNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyShopNotFound, err)
	case errors.Is(err, service.ErrProductNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
	case errors.Is(err, service.ErrItemNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyItemNotFound, err)
	case errors.Is(err, service.ErrInvalidProduct),
		errors.Is(err, service.ErrInvalidShop),
		errors.Is(err, service.ErrInvalidList):
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// CompareShoppingList handles GET /api/shopping-lists/:id/compare requests.
//
// @Summary      Compare shopping list prices across shops
// @Description  Evaluates every shop in the catalog against the given shopping list. Returns one row per shop with per-item prices, the shop's total for available items, and availability counts, plus the best option overall. Missing items never fail the comparison; they are reported as unavailable.
// @Tags         Comparisons
// @Produce      json
// @Param        id path string true "Shopping list ID"
// @Success      200 {object} dto.SuccessResponse "Comparison result"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - insufficient permissions"
// @Failure      404 {object} dto.ErrorResponse "Not found - shopping list does not exist"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/shopping-lists/{id}/compare [get]
func (h *Handler) CompareShoppingList(c *gin.Context) {
	builder := NewResponseBuilder(c)
	listID := c.Param("id")

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "compare", "Price comparison requested", map[string]interface{}{
				"list_id": listID,
			})
		}
	}

	result, err := h.pricing.CompareShoppingListPrices(c.Request.Context(), listID)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(result)
}

// GetBestOption handles GET /api/shopping-lists/:id/compare/best requests.
//
// @Summary      Get the best shop for a shopping list
// @Description  Returns only the winning shop for the list: the one with the lowest total over its available items, ties broken by higher availability and then by shop id. The bestOption field is null when no shop covers any item.
// @Tags         Comparisons
// @Produce      json
// @Param        id path string true "Shopping list ID"
// @Success      200 {object} dto.SuccessResponse "Best shopping option, possibly null"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found - shopping list does not exist"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/shopping-lists/{id}/compare/best [get]
func (h *Handler) GetBestOption(c *gin.Context) {
	builder := NewResponseBuilder(c)

	best, err := h.pricing.GetBestShoppingOption(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(best)
}
