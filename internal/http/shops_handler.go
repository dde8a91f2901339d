package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shoplist-service/internal/domain/dto"
	"github.com/guttosm/shoplist-service/internal/i18n"
	"github.com/guttosm/shoplist-service/internal/service"
)

// ShopsHandler provides HTTP handlers for shop management.
type ShopsHandler struct {
	catalog service.CatalogService
}

// NewShopsHandler creates a new ShopsHandler instance.
func NewShopsHandler(catalog service.CatalogService) *ShopsHandler {
	return &ShopsHandler{catalog: catalog}
}

// CreateShop handles POST /api/shops requests.
//
// @Summary      Register a shop
// @Tags         Shops
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateShopRequest true "Shop information"
// @Success      201 {object} dto.SuccessResponse "Created shop"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/shops [post]
func (h *ShopsHandler) CreateShop(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateShopRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	shop, err := h.catalog.CreateShop(c.Request.Context(), req.ToModel())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessCreated(shop)
}

// GetShop handles GET /api/shops/:id requests.
//
// @Summary      Get a shop by id
// @Tags         Shops
// @Produce      json
// @Param        id path string true "Shop ID"
// @Success      200 {object} dto.SuccessResponse "Shop"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/shops/{id} [get]
func (h *ShopsHandler) GetShop(c *gin.Context) {
	builder := NewResponseBuilder(c)

	shop, err := h.catalog.GetShop(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(shop)
}

// ListShops handles GET /api/shops requests.
//
// @Summary      List all shops
// @Tags         Shops
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "All shops"
// @Security     BearerAuth
// @Router       /api/shops [get]
func (h *ShopsHandler) ListShops(c *gin.Context) {
	builder := NewResponseBuilder(c)

	shops, err := h.catalog.ListShops(c.Request.Context())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(shops)
}

// UpdateShop handles PUT /api/shops/:id requests.
//
// @Summary      Update a shop
// @Tags         Shops
// @Accept       json
// @Produce      json
// @Param        id path string true "Shop ID"
// @Param        request body dto.CreateShopRequest true "Shop information"
// @Success      200 {object} dto.SuccessResponse "Updated shop"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/shops/{id} [put]
func (h *ShopsHandler) UpdateShop(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateShopRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	shop, err := h.catalog.UpdateShop(c.Request.Context(), c.Param("id"), req.ToModel())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(shop)
}

// DeleteShop handles DELETE /api/shops/:id requests.
//
// @Summary      Delete a shop
// @Description  Removes a shop. Its products stop participating in comparisons.
// @Tags         Shops
// @Produce      json
// @Param        id path string true "Shop ID"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/shops/{id} [delete]
func (h *ShopsHandler) DeleteShop(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.catalog.DeleteShop(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"deleted": true})
}
