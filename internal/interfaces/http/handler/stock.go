package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stockline/backend/internal/application/stocks"
)

// StockHandler handles stock baseline record endpoints
type StockHandler struct {
	BaseHandler
	stockService *stocks.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *stocks.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Create handles POST /api/v1/stocks
func (h *StockHandler) Create(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req stocks.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	record, err := h.stockService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, record)
}

// List handles GET /api/v1/stocks
func (h *StockHandler) List(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	if code := c.Query("item_code"); code != "" {
		records, err := h.stockService.ListByItemCode(c.Request.Context(), userID, code)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, records)
		return
	}

	records, err := h.stockService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, records)
}

// Get handles GET /api/v1/stocks/:id
func (h *StockHandler) Get(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	record, err := h.stockService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, record)
}

// Update handles PUT /api/v1/stocks/:id
func (h *StockHandler) Update(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req stocks.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	record, err := h.stockService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete handles DELETE /api/v1/stocks/:id
func (h *StockHandler) Delete(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.stockService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Import handles PUT /api/v1/stocks, replacing every baseline record
// with the uploaded list.
func (h *StockHandler) Import(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var reqs []stocks.CreateRecordRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	records, err := h.stockService.ReplaceAll(c.Request.Context(), userID, reqs)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, records)
}
