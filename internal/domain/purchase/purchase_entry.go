package purchase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/reconcile"
	"github.com/stockline/backend/internal/domain/shared"
)

// IndentStatus tracks how far a purchase entry's indent demand is
// covered.
type IndentStatus string

const (
	// StatusOpen means nothing of the indent demand is covered yet.
	StatusOpen IndentStatus = "Open"
	// StatusClosed means the demand is fully covered.
	StatusClosed IndentStatus = "Closed"
	// StatusPartial means stock covers part of the demand.
	StatusPartial IndentStatus = "Partial"
)

// Valid reports whether s is a known status.
func (s IndentStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusPartial:
		return true
	}
	return false
}

// Entry is one procurement line against a supplier, tied back to the
// indent it covers. CurrentStock is a cached copy of the live closing
// stock at last refresh; the reconciliation engine is the authority
// and RefreshStock brings the cache back in line.
type Entry struct {
	shared.OwnedAggregateRoot
	PONo              string `gorm:"not null;index"`
	SupplierName      string
	IndentNo          string          `gorm:"index"`
	ItemCode          string          `gorm:"not null;index"`
	OriginalIndentQty decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PurchaseQty       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CurrentStock      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	IndentStatus      IndentStatus    `gorm:"not null;default:'Open'"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "purchase_entries"
}

// NewEntry creates a purchase entry.
func NewEntry(userID uuid.UUID, poNo, supplierName, indentNo, itemCode string, originalIndentQty, purchaseQty decimal.Decimal, status IndentStatus) (*Entry, error) {
	poNo = strings.TrimSpace(poNo)
	itemCode = strings.TrimSpace(itemCode)
	if poNo == "" {
		return nil, shared.NewDomainError("INVALID_PO_NO", "PO number is required")
	}
	if itemCode == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_CODE", "Item code is required")
	}
	if purchaseQty.IsNegative() || originalIndentQty.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantities cannot be negative")
	}
	if status == "" {
		status = StatusOpen
	}
	if !status.Valid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Indent status must be Open, Closed or Partial")
	}

	e := &Entry{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		PONo:               poNo,
		SupplierName:       supplierName,
		IndentNo:           strings.TrimSpace(indentNo),
		ItemCode:           itemCode,
		OriginalIndentQty:  originalIndentQty,
		PurchaseQty:        purchaseQty,
		IndentStatus:       status,
	}
	e.AddDomainEvent(NewEntryChangedEvent(e, "purchase.entry.created"))
	return e, nil
}

// Update replaces the entry's editable fields. The cached stock figure
// stays untouched; RefreshStock owns it.
func (e *Entry) Update(supplierName, indentNo string, originalIndentQty, purchaseQty decimal.Decimal, status IndentStatus) error {
	if purchaseQty.IsNegative() || originalIndentQty.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantities cannot be negative")
	}
	if status == "" {
		status = e.IndentStatus
	}
	if !status.Valid() {
		return shared.NewDomainError("INVALID_STATUS", "Indent status must be Open, Closed or Partial")
	}
	e.SupplierName = supplierName
	e.IndentNo = strings.TrimSpace(indentNo)
	e.OriginalIndentQty = originalIndentQty
	e.PurchaseQty = purchaseQty
	e.IndentStatus = status
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	e.AddDomainEvent(NewEntryChangedEvent(e, "purchase.entry.updated"))
	return nil
}

// RefreshStock updates the cached stock figure and re-derives the
// status from live stock against the indent demand. Returns true when
// anything changed.
func (e *Entry) RefreshStock(liveStock decimal.Decimal) bool {
	status := e.deriveStatus(liveStock)
	if e.CurrentStock.Equal(liveStock) && e.IndentStatus == status {
		return false
	}
	e.CurrentStock = liveStock
	e.IndentStatus = status
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	e.AddDomainEvent(NewEntryChangedEvent(e, "purchase.entry.updated"))
	return true
}

func (e *Entry) deriveStatus(liveStock decimal.Decimal) IndentStatus {
	if e.OriginalIndentQty.LessThanOrEqual(decimal.Zero) {
		return e.IndentStatus
	}
	switch {
	case liveStock.GreaterThanOrEqual(e.OriginalIndentQty):
		return StatusClosed
	case liveStock.GreaterThan(decimal.Zero):
		return StatusPartial
	default:
		return StatusOpen
	}
}

// Reconcile maps the entry into the engine's snapshot shape.
func (e *Entry) Reconcile() reconcile.PurchaseEntry {
	return reconcile.PurchaseEntry{
		PONo:              e.PONo,
		SupplierName:      e.SupplierName,
		IndentNo:          e.IndentNo,
		ItemCode:          e.ItemCode,
		OriginalIndentQty: e.OriginalIndentQty,
		PurchaseQty:       e.PurchaseQty,
		CurrentStock:      e.CurrentStock,
		IndentStatus:      string(e.IndentStatus),
	}
}

// EntryChangedEvent fires on purchase entry create/update/delete.
type EntryChangedEvent struct {
	shared.BaseDomainEvent
	PONo     string `json:"po_no"`
	ItemCode string `json:"item_code"`
}

// NewEntryChangedEvent creates an EntryChangedEvent
func NewEntryChangedEvent(e *Entry, eventType string) *EntryChangedEvent {
	return &EntryChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "PurchaseEntry", e.ID, e.UserID),
		PONo:            e.PONo,
		ItemCode:        e.ItemCode,
	}
}
