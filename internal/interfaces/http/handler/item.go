package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stockline/backend/internal/application/catalog"
)

// ItemHandler handles item master endpoints
type ItemHandler struct {
	BaseHandler
	itemService *catalog.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *catalog.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// Create handles POST /api/v1/items
func (h *ItemHandler) Create(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req catalog.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, item)
}

// List handles GET /api/v1/items
func (h *ItemHandler) List(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	if code := c.Query("item_code"); code != "" {
		item, err := h.itemService.GetByCode(c.Request.Context(), userID, code)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, []interface{}{item})
		return
	}

	items, err := h.itemService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, items)
}

// Get handles GET /api/v1/items/:id
func (h *ItemHandler) Get(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// Update handles PUT /api/v1/items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req catalog.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete handles DELETE /api/v1/items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Import handles PUT /api/v1/items, replacing the whole item master
// with the uploaded list.
func (h *ItemHandler) Import(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var reqs []catalog.CreateItemRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	items, err := h.itemService.ReplaceAll(c.Request.Context(), userID, reqs)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, items)
}
