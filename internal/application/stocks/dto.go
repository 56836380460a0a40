package stocks

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/stock"
)

// CreateRecordRequest contains data for creating a stock record
type CreateRecordRequest struct {
	ItemName    string          `json:"item_name" binding:"max=200"`
	ItemCode    string          `json:"item_code" binding:"required,max=100"`
	BatchNo     string          `json:"batch_no" binding:"max=50"`
	BaselineQty decimal.Decimal `json:"baseline_qty"`
}

// UpdateRecordRequest replaces a record's baseline figure
type UpdateRecordRequest struct {
	BaselineQty decimal.Decimal `json:"baseline_qty"`
}

// RecordResponse is the client shape of a stock record
type RecordResponse struct {
	ID           uuid.UUID       `json:"id"`
	ItemName     string          `json:"item_name"`
	ItemCode     string          `json:"item_code"`
	BatchNo      string          `json:"batch_no"`
	BaselineQty  decimal.Decimal `json:"baseline_qty"`
	ClosingStock decimal.Decimal `json:"closing_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToRecordResponse maps a stock record to its client shape
func ToRecordResponse(r *stock.Record) RecordResponse {
	return RecordResponse{
		ID:           r.ID,
		ItemName:     r.ItemName,
		ItemCode:     r.ItemCode,
		BatchNo:      r.BatchNo,
		BaselineQty:  r.BaselineQty,
		ClosingStock: r.ClosingStock,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
