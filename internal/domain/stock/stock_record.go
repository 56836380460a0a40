package stock

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/reconcile"
	"github.com/stockline/backend/internal/domain/shared"
)

// Record is a manually entered stock baseline for one item. BaselineQty
// is the hand-counted opening figure; ClosingStock is a cached copy of
// the last computed closing figure, persisted for export and offline
// reads but never trusted by the reconciliation engine, which always
// recomputes from the baseline.
type Record struct {
	shared.OwnedAggregateRoot
	ItemName     string
	ItemCode     string          `gorm:"not null;index"`
	BatchNo      string          `gorm:"index"`
	BaselineQty  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ClosingStock decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Record) TableName() string {
	return "stock_records"
}

// NewRecord creates a stock record.
func NewRecord(userID uuid.UUID, itemName, itemCode, batchNo string, baselineQty decimal.Decimal) (*Record, error) {
	itemCode = strings.TrimSpace(itemCode)
	if itemCode == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_CODE", "Item code is required")
	}
	if baselineQty.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Baseline quantity cannot be negative")
	}

	r := &Record{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		ItemName:           itemName,
		ItemCode:           itemCode,
		BatchNo:            strings.TrimSpace(batchNo),
		BaselineQty:        baselineQty,
	}
	r.AddDomainEvent(NewRecordChangedEvent(r, "stock.record.created"))
	return r, nil
}

// SetBaseline replaces the hand-counted baseline.
func (r *Record) SetBaseline(qty decimal.Decimal) error {
	if qty.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Baseline quantity cannot be negative")
	}
	r.BaselineQty = qty
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	r.AddDomainEvent(NewRecordChangedEvent(r, "stock.record.updated"))
	return nil
}

// CacheClosing stores the latest computed closing figure. Returns true
// when the cache actually moved.
func (r *Record) CacheClosing(closing decimal.Decimal) bool {
	if r.ClosingStock.Equal(closing) {
		return false
	}
	r.ClosingStock = closing
	r.UpdatedAt = time.Now()
	return true
}

// Reconcile maps the record into the engine's snapshot shape.
func (r *Record) Reconcile() reconcile.StockRow {
	return reconcile.StockRow{
		ItemName:      r.ItemName,
		ItemCode:      r.ItemCode,
		BatchNo:       r.BatchNo,
		BaselineQty:   r.BaselineQty,
		StoredClosing: r.ClosingStock,
	}
}

// RecordChangedEvent fires on stock record create/update/delete.
type RecordChangedEvent struct {
	shared.BaseDomainEvent
	ItemCode string `json:"item_code"`
}

// NewRecordChangedEvent creates a RecordChangedEvent
func NewRecordChangedEvent(r *Record, eventType string) *RecordChangedEvent {
	return &RecordChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "StockRecord", r.ID, r.UserID),
		ItemCode:        r.ItemCode,
	}
}
