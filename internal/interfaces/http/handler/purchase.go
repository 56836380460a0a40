package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stockline/backend/internal/application/procurement"
)

// PurchaseHandler handles purchase entry and vendor department endpoints
type PurchaseHandler struct {
	BaseHandler
	purchaseService *procurement.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *procurement.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// CreateEntry handles POST /api/v1/purchase-entries
func (h *PurchaseHandler) CreateEntry(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req procurement.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	entry, err := h.purchaseService.CreateEntry(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, entry)
}

// ListEntries handles GET /api/v1/purchase-entries. An optional po_no
// query parameter narrows the list to one purchase order.
func (h *PurchaseHandler) ListEntries(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	if poNo := c.Query("po_no"); poNo != "" {
		entries, err := h.purchaseService.ListEntriesByPO(c.Request.Context(), userID, poNo)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, entries)
		return
	}

	entries, err := h.purchaseService.ListEntries(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entries)
}

// GetEntry handles GET /api/v1/purchase-entries/:id
func (h *PurchaseHandler) GetEntry(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	entry, err := h.purchaseService.GetEntry(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entry)
}

// UpdateEntry handles PUT /api/v1/purchase-entries/:id
func (h *PurchaseHandler) UpdateEntry(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req procurement.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	entry, err := h.purchaseService.UpdateEntry(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entry)
}

// DeleteEntry handles DELETE /api/v1/purchase-entries/:id
func (h *PurchaseHandler) DeleteEntry(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.purchaseService.DeleteEntry(c.Request.Context(), userID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateVendorDept handles POST /api/v1/vendor-dept-orders
func (h *PurchaseHandler) CreateVendorDept(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req procurement.CreateVendorDeptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	order, err := h.purchaseService.CreateVendorDept(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, order)
}

// ListVendorDepts handles GET /api/v1/vendor-dept-orders
func (h *PurchaseHandler) ListVendorDepts(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	if poNo := c.Query("po_no"); poNo != "" {
		order, err := h.purchaseService.GetVendorDeptByPO(c.Request.Context(), userID, poNo)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, []interface{}{order})
		return
	}

	orders, err := h.purchaseService.ListVendorDepts(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, orders)
}

// GetVendorDept handles GET /api/v1/vendor-dept-orders/:id
func (h *PurchaseHandler) GetVendorDept(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	order, err := h.purchaseService.GetVendorDept(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// UpdateVendorDept handles PUT /api/v1/vendor-dept-orders/:id
func (h *PurchaseHandler) UpdateVendorDept(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req procurement.UpdateVendorDeptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	order, err := h.purchaseService.UpdateVendorDept(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// RecordInspection handles POST /api/v1/vendor-dept-orders/:id/inspection,
// recording the OK quantity for one line after quality inspection.
func (h *PurchaseHandler) RecordInspection(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req procurement.RecordInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	order, err := h.purchaseService.RecordInspection(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// DeleteVendorDept handles DELETE /api/v1/vendor-dept-orders/:id
func (h *PurchaseHandler) DeleteVendorDept(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.purchaseService.DeleteVendorDept(c.Request.Context(), userID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
