package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stockline/backend/internal/application/indents"
)

// IndentHandler handles sales indent endpoints
type IndentHandler struct {
	BaseHandler
	indentService *indents.IndentService
}

// NewIndentHandler creates a new indent handler
func NewIndentHandler(indentService *indents.IndentService) *IndentHandler {
	return &IndentHandler{indentService: indentService}
}

// NextIndentNo handles GET /api/v1/indents/next-indent-no
func (h *IndentHandler) NextIndentNo(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	no, err := h.indentService.NextIndentNo(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"indent_no": no})
}

// NextOANo handles GET /api/v1/indents/next-oa-no. The indent_by query
// parameter selects whose series to continue; start_series=true begins
// a fresh "Stock" series instead.
func (h *IndentHandler) NextOANo(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	indentBy := c.Query("indent_by")
	startSeries := c.Query("start_series") == "true"

	no, err := h.indentService.NextOANo(c.Request.Context(), userID, indentBy, startSeries)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"oa_no": no})
}

// Create handles POST /api/v1/indents
func (h *IndentHandler) Create(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req indents.CreateIndentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	ind, err := h.indentService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, ind)
}

// List handles GET /api/v1/indents
func (h *IndentHandler) List(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	list, err := h.indentService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, list)
}

// Get handles GET /api/v1/indents/:id
func (h *IndentHandler) Get(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	ind, err := h.indentService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, ind)
}

// Update handles PUT /api/v1/indents/:id
func (h *IndentHandler) Update(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req indents.UpdateIndentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	ind, err := h.indentService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, ind)
}

// Delete handles DELETE /api/v1/indents/:id
func (h *IndentHandler) Delete(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.indentService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
