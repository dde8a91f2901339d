package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shoplist-service/internal/domain/dto"
	"github.com/guttosm/shoplist-service/internal/i18n"
	"github.com/guttosm/shoplist-service/internal/repository"
	"github.com/guttosm/shoplist-service/internal/service"
)

// ProductsHandler provides HTTP handlers for product catalog management.
type ProductsHandler struct {
	catalog service.CatalogService
}

// NewProductsHandler creates a new ProductsHandler instance.
func NewProductsHandler(catalog service.CatalogService) *ProductsHandler {
	return &ProductsHandler{catalog: catalog}
}

// CreateProduct handles POST /api/products requests.
//
// @Summary      Add a product to the catalog
// @Description  Registers a product under an existing shop. Prices are decimal and must not be negative.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProductRequest true "Product information"
// @Success      201 {object} dto.SuccessResponse "Created product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - shop does not exist"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products [post]
func (h *ProductsHandler) CreateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateProductRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), req.ToModel())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessCreated(product)
}

// GetProduct handles GET /api/products/:id requests.
//
// @Summary      Get a product by id
// @Tags         Products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse "Product"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/products/{id} [get]
func (h *ProductsHandler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(product)
}

// ListProducts handles GET /api/products requests.
//
// @Summary      List catalog products
// @Description  Lists products, optionally filtered by shop, category, or a case-insensitive name substring.
// @Tags         Products
// @Produce      json
// @Param        shopId query string false "Filter by shop id"
// @Param        category query string false "Filter by category"
// @Param        name query string false "Filter by name substring"
// @Param        limit query int false "Maximum number of results"
// @Success      200 {object} dto.SuccessResponse "Matching products"
// @Security     BearerAuth
// @Router       /api/products [get]
func (h *ProductsHandler) ListProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, _ := strconv.Atoi(c.Query("limit"))
	filter := repository.ProductFilter{
		ShopID:   c.Query("shopId"),
		Category: c.Query("category"),
		Name:     c.Query("name"),
		Limit:    limit,
	}

	products, err := h.catalog.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(products)
}

// UpdateProduct handles PUT /api/products/:id requests.
//
// @Summary      Update a product
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body dto.CreateProductRequest true "Product information"
// @Success      200 {object} dto.SuccessResponse "Updated product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/products/{id} [put]
func (h *ProductsHandler) UpdateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateProductRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	product, err := h.catalog.UpdateProduct(c.Request.Context(), c.Param("id"), req.ToModel())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(product)
}

// DeleteProduct handles DELETE /api/products/:id requests.
//
// @Summary      Delete a product
// @Tags         Products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products/{id} [delete]
func (h *ProductsHandler) DeleteProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"deleted": true})
}
