package receipt

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/reconcile"
	"github.com/stockline/backend/internal/domain/shared"
)

// VSIR is a vendor stock inward report: material coming back from a
// vendor rework cycle, one item per record. Rework quantity is material
// that failed inspection and goes back out; it still counts toward the
// received total when netting against what was issued.
type VSIR struct {
	shared.OwnedAggregateRoot
	PONo          string `gorm:"not null;index"`
	VendorBatchNo string `gorm:"index"`
	DCNo          string
	Date          string
	ItemCode      string          `gorm:"not null;index"`
	OKQty         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ReworkQty     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	RejectQty     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (VSIR) TableName() string {
	return "vsirs"
}

// NewVSIR creates a vendor stock inward report.
func NewVSIR(userID uuid.UUID, poNo, vendorBatchNo, dcNo, date, itemCode string, okQty, reworkQty, rejectQty decimal.Decimal) (*VSIR, error) {
	poNo = strings.TrimSpace(poNo)
	itemCode = strings.TrimSpace(itemCode)
	if poNo == "" {
		return nil, shared.NewDomainError("INVALID_PO_NO", "PO number is required")
	}
	if itemCode == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_CODE", "Item code is required")
	}
	if okQty.IsNegative() || reworkQty.IsNegative() || rejectQty.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantities cannot be negative")
	}

	v := &VSIR{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		PONo:               poNo,
		VendorBatchNo:      strings.TrimSpace(vendorBatchNo),
		DCNo:               strings.TrimSpace(dcNo),
		Date:               date,
		ItemCode:           itemCode,
		OKQty:              okQty,
		ReworkQty:          reworkQty,
		RejectQty:          rejectQty,
	}
	v.AddDomainEvent(NewVSIRChangedEvent(v, "receipt.vsir.created"))
	return v, nil
}

// UpdateQuantities replaces the inspected split.
func (v *VSIR) UpdateQuantities(okQty, reworkQty, rejectQty decimal.Decimal) error {
	if okQty.IsNegative() || reworkQty.IsNegative() || rejectQty.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantities cannot be negative")
	}
	v.OKQty = okQty
	v.ReworkQty = reworkQty
	v.RejectQty = rejectQty
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	v.AddDomainEvent(NewVSIRChangedEvent(v, "receipt.vsir.updated"))
	return nil
}

// ReceivedQty returns the full quantity that came back from the vendor.
func (v *VSIR) ReceivedQty() decimal.Decimal {
	return v.OKQty.Add(v.ReworkQty).Add(v.RejectQty)
}

// Reconcile maps the report into the engine's snapshot shape.
func (v *VSIR) Reconcile() reconcile.VSIR {
	return reconcile.VSIR{
		PONo:          v.PONo,
		VendorBatchNo: v.VendorBatchNo,
		ItemCode:      v.ItemCode,
		OKQty:         v.OKQty,
		ReworkQty:     v.ReworkQty,
		RejectQty:     v.RejectQty,
	}
}

// VSIRChangedEvent fires on VSIR create/update/delete.
type VSIRChangedEvent struct {
	shared.BaseDomainEvent
	PONo     string `json:"po_no"`
	ItemCode string `json:"item_code"`
}

// NewVSIRChangedEvent creates a VSIRChangedEvent
func NewVSIRChangedEvent(v *VSIR, eventType string) *VSIRChangedEvent {
	return &VSIRChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "VSIR", v.ID, v.UserID),
		PONo:            v.PONo,
		ItemCode:        v.ItemCode,
	}
}
