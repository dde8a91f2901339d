package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shoplist-service/internal/domain/dto"
	"github.com/guttosm/shoplist-service/internal/i18n"
	"github.com/guttosm/shoplist-service/internal/service"
)

// ShoppingListsHandler provides HTTP handlers for shopping list management.
type ShoppingListsHandler struct {
	lists service.ShoppingListService
}

// NewShoppingListsHandler creates a new ShoppingListsHandler instance.
func NewShoppingListsHandler(lists service.ShoppingListService) *ShoppingListsHandler {
	return &ShoppingListsHandler{lists: lists}
}

// ownerID resolves the requesting user from the JWT claims middleware, or
// empty when auth is disabled.
func ownerID(c *gin.Context) string {
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}

// CreateList handles POST /api/shopping-lists requests.
//
// @Summary      Create a shopping list
// @Description  Creates a list with optional initial items. Malformed items (blank name, non-positive quantity) are stored as-is and reported as unavailable in comparisons.
// @Tags         ShoppingLists
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateShoppingListRequest true "List information"
// @Success      201 {object} dto.SuccessResponse "Created list"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/shopping-lists [post]
func (h *ShoppingListsHandler) CreateList(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateShoppingListRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	list := req.ToModel()
	list.OwnerID = ownerID(c)

	created, err := h.lists.CreateList(c.Request.Context(), list)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessCreated(created)
}

// GetList handles GET /api/shopping-lists/:id requests.
//
// @Summary      Get a shopping list by id
// @Tags         ShoppingLists
// @Produce      json
// @Param        id path string true "Shopping list ID"
// @Success      200 {object} dto.SuccessResponse "Shopping list"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/shopping-lists/{id} [get]
func (h *ShoppingListsHandler) GetList(c *gin.Context) {
	builder := NewResponseBuilder(c)

	list, err := h.lists.GetList(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(list)
}

// ListLists handles GET /api/shopping-lists requests.
//
// @Summary      List shopping lists
// @Description  Returns the requesting user's lists, or all lists when auth is disabled.
// @Tags         ShoppingLists
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Shopping lists"
// @Security     BearerAuth
// @Router       /api/shopping-lists [get]
func (h *ShoppingListsHandler) ListLists(c *gin.Context) {
	builder := NewResponseBuilder(c)

	lists, err := h.lists.ListsByOwner(c.Request.Context(), ownerID(c))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(lists)
}

// RenameList handles PUT /api/shopping-lists/:id requests.
//
// @Summary      Rename a shopping list
// @Tags         ShoppingLists
// @Accept       json
// @Produce      json
// @Param        id path string true "Shopping list ID"
// @Param        request body dto.RenameShoppingListRequest true "New name"
// @Success      200 {object} dto.SuccessResponse "Renamed list"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/shopping-lists/{id} [put]
func (h *ShoppingListsHandler) RenameList(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.RenameShoppingListRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	list, err := h.lists.RenameList(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(list)
}

// DeleteList handles DELETE /api/shopping-lists/:id requests.
//
// @Summary      Delete a shopping list
// @Tags         ShoppingLists
// @Produce      json
// @Param        id path string true "Shopping list ID"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/shopping-lists/{id} [delete]
func (h *ShoppingListsHandler) DeleteList(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.lists.DeleteList(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"deleted": true})
}

// AddItem handles POST /api/shopping-lists/:id/items requests.
//
// @Summary      Add an item to a shopping list
// @Tags         ShoppingLists
// @Accept       json
// @Produce      json
// @Param        id path string true "Shopping list ID"
// @Param        request body dto.ListItemRequest true "Item information"
// @Success      200 {object} dto.SuccessResponse "Updated list"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/shopping-lists/{id}/items [post]
func (h *ShoppingListsHandler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ListItemRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	list, err := h.lists.AddItem(c.Request.Context(), c.Param("id"), req.ToModel())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(list)
}

// UpdateItem handles PUT /api/shopping-lists/:id/items/:itemId requests.
//
// @Summary      Update a list item
// @Tags         ShoppingLists
// @Accept       json
// @Produce      json
// @Param        id path string true "Shopping list ID"
// @Param        itemId path string true "Item ID"
// @Param        request body dto.ListItemRequest true "Item information"
// @Success      200 {object} dto.SuccessResponse "Updated list"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/shopping-lists/{id}/items/{itemId} [put]
func (h *ShoppingListsHandler) UpdateItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ListItemRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	item := req.ToModel()
	item.ID = c.Param("itemId")

	list, err := h.lists.UpdateItem(c.Request.Context(), c.Param("id"), item)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(list)
}

// RemoveItem handles DELETE /api/shopping-lists/:id/items/:itemId requests.
//
// @Summary      Remove a list item
// @Tags         ShoppingLists
// @Produce      json
// @Param        id path string true "Shopping list ID"
// @Param        itemId path string true "Item ID"
// @Success      200 {object} dto.SuccessResponse "Updated list"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/shopping-lists/{id}/items/{itemId} [delete]
func (h *ShoppingListsHandler) RemoveItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	list, err := h.lists.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(list)
}
