package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockline/backend/internal/application/reconciliation"
	"github.com/stockline/backend/internal/domain/reconcile"
)

// ReconcileHandler serves the derived quantities the reconciliation
// engine computes from the transaction history.
type ReconcileHandler struct {
	BaseHandler
	service *reconciliation.Service
	hub     *reconciliation.Hub
}

// NewReconcileHandler creates a new reconcile handler
func NewReconcileHandler(service *reconciliation.Service, hub *reconciliation.Hub) *ReconcileHandler {
	return &ReconcileHandler{service: service, hub: hub}
}

// Allocations handles GET /api/v1/reconcile/allocations
func (h *ReconcileHandler) Allocations(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	allocations, err := h.service.Allocations(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, allocations)
}

// StockSummary handles GET /api/v1/reconcile/stock-summary
func (h *ReconcileHandler) StockSummary(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	summary, err := h.service.StockSummary(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, summary)
}

// ClosingStock handles GET /api/v1/reconcile/closing-stock/:code
func (h *ReconcileHandler) ClosingStock(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	itemCode := c.Param("code")

	qty, err := h.service.ClosingStockFor(c.Request.Context(), userID, itemCode)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"item_code": itemCode, "closing_stock": qty})
}

// RemainingStock handles GET /api/v1/reconcile/remaining-stock/:code
func (h *ReconcileHandler) RemainingStock(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	itemCode := c.Param("code")

	qty, err := h.service.RemainingStock(c.Request.Context(), userID, itemCode)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"item_code": itemCode, "remaining_stock": qty})
}

// BatchDetail handles GET /api/v1/reconcile/batch-detail. Query
// parameters: batch_no, item_code, tx_type.
func (h *ReconcileHandler) BatchDetail(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	batchNo := c.Query("batch_no")
	itemCode := c.Query("item_code")
	txType := reconcile.TransactionType(c.Query("tx_type"))
	if batchNo == "" || itemCode == "" {
		h.BadRequest(c, "batch_no and item_code are required")
		return
	}
	if !txType.Valid() {
		h.BadRequest(c, "tx_type must be one of Purchase, Vendor, Stock")
		return
	}

	detail, err := h.service.BatchDetail(c.Request.Context(), userID, batchNo, itemCode, txType)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, detail)
}

// AvailableBatches handles GET /api/v1/reconcile/available-batches.
// Query parameters: item_code, tx_type.
func (h *ReconcileHandler) AvailableBatches(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	itemCode := c.Query("item_code")
	txType := reconcile.TransactionType(c.Query("tx_type"))
	if itemCode == "" {
		h.BadRequest(c, "item_code is required")
		return
	}
	if !txType.Valid() {
		h.BadRequest(c, "tx_type must be one of Purchase, Vendor, Stock")
		return
	}

	batches, err := h.service.AvailableBatches(c.Request.Context(), userID, itemCode, txType)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, batches)
}

// Watch handles GET /api/v1/reconcile/watch, streaming a server-sent
// event each time the reconciliation hub finishes a recompute for this
// user. Clients refetch their derived views on every tick.
func (h *ReconcileHandler) Watch(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	if h.hub == nil {
		h.Error(c, http.StatusServiceUnavailable, "WATCH_UNAVAILABLE", "Change notifications are not enabled")
		return
	}

	updates, cancel := h.hub.Subscribe(userID)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case _, open := <-updates:
			if !open {
				return false
			}
			c.SSEvent("reconciled", gin.H{"user_id": userID.String()})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
