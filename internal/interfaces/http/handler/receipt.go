package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stockline/backend/internal/application/receiving"
)

// ReceiptHandler handles PSIR and VSIR endpoints
type ReceiptHandler struct {
	BaseHandler
	receiptService *receiving.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *receiving.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// NextBatchNo handles GET /api/v1/psirs/next-batch-no
func (h *ReceiptHandler) NextBatchNo(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	batchNo, err := h.receiptService.NextBatchNo(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"batch_no": batchNo})
}

// CreatePSIR handles POST /api/v1/psirs
func (h *ReceiptHandler) CreatePSIR(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req receiving.CreatePSIRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	psir, err := h.receiptService.CreatePSIR(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, psir)
}

// ListPSIRs handles GET /api/v1/psirs
func (h *ReceiptHandler) ListPSIRs(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	if poNo := c.Query("po_no"); poNo != "" {
		list, err := h.receiptService.ListPSIRsByPO(c.Request.Context(), userID, poNo)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, list)
		return
	}

	list, err := h.receiptService.ListPSIRs(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, list)
}

// GetPSIR handles GET /api/v1/psirs/:id
func (h *ReceiptHandler) GetPSIR(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	psir, err := h.receiptService.GetPSIR(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, psir)
}

// UpdatePSIR handles PUT /api/v1/psirs/:id
func (h *ReceiptHandler) UpdatePSIR(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req receiving.UpdatePSIRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	psir, err := h.receiptService.UpdatePSIR(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, psir)
}

// DeletePSIR handles DELETE /api/v1/psirs/:id
func (h *ReceiptHandler) DeletePSIR(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.receiptService.DeletePSIR(c.Request.Context(), userID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateVSIR handles POST /api/v1/vsirs
func (h *ReceiptHandler) CreateVSIR(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req receiving.CreateVSIRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	vsir, err := h.receiptService.CreateVSIR(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, vsir)
}

// ListVSIRs handles GET /api/v1/vsirs
func (h *ReceiptHandler) ListVSIRs(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	if poNo := c.Query("po_no"); poNo != "" {
		list, err := h.receiptService.ListVSIRsByPO(c.Request.Context(), userID, poNo)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, list)
		return
	}

	list, err := h.receiptService.ListVSIRs(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, list)
}

// GetVSIR handles GET /api/v1/vsirs/:id
func (h *ReceiptHandler) GetVSIR(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	vsir, err := h.receiptService.GetVSIR(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, vsir)
}

// UpdateVSIR handles PUT /api/v1/vsirs/:id
func (h *ReceiptHandler) UpdateVSIR(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req receiving.UpdateVSIRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	vsir, err := h.receiptService.UpdateVSIR(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, vsir)
}

// DeleteVSIR handles DELETE /api/v1/vsirs/:id
func (h *ReceiptHandler) DeleteVSIR(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.receiptService.DeleteVSIR(c.Request.Context(), userID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
