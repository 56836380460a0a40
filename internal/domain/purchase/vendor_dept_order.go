package purchase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/reconcile"
	"github.com/stockline/backend/internal/domain/shared"
)

// VendorDeptOrder is a processing order placed on a vendor department:
// material goes out for rework and comes back inspected. Its lines
// carry both the ordered quantity and the vendor's OK quantity, which
// feeds the vendor pool of the closing-stock composition.
type VendorDeptOrder struct {
	shared.OwnedAggregateRoot
	PONo       string           `gorm:"not null;index"`
	VendorName string
	Lines      []VendorDeptLine `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// VendorDeptLine is one item on a vendor department order.
type VendorDeptLine struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemCode string    `gorm:"not null;index"`
	Qty      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	OKQty    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (VendorDeptOrder) TableName() string {
	return "vendor_dept_orders"
}

// TableName returns the table name for GORM
func (VendorDeptLine) TableName() string {
	return "vendor_dept_lines"
}

// VendorDeptLineInput carries one line into NewVendorDeptOrder.
type VendorDeptLineInput struct {
	ItemCode string
	Qty      decimal.Decimal
	OKQty    decimal.Decimal
}

// NewVendorDeptOrder creates a vendor department order with lines.
func NewVendorDeptOrder(userID uuid.UUID, poNo, vendorName string, lines []VendorDeptLineInput) (*VendorDeptOrder, error) {
	poNo = strings.TrimSpace(poNo)
	if poNo == "" {
		return nil, shared.NewDomainError("INVALID_PO_NO", "PO number is required")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("INVALID_LINES", "A vendor department order needs at least one line")
	}

	order := &VendorDeptOrder{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		PONo:               poNo,
		VendorName:         vendorName,
	}
	for _, in := range lines {
		if err := order.appendLine(in); err != nil {
			return nil, err
		}
	}
	order.AddDomainEvent(NewVendorDeptChangedEvent(order, "purchase.vendordept.created"))
	return order, nil
}

func (o *VendorDeptOrder) appendLine(in VendorDeptLineInput) error {
	code := strings.TrimSpace(in.ItemCode)
	if code == "" {
		return shared.NewDomainError("INVALID_ITEM_CODE", "Item code is required on every line")
	}
	if in.Qty.IsNegative() || in.OKQty.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantities cannot be negative")
	}
	o.Lines = append(o.Lines, VendorDeptLine{
		ID:       uuid.New(),
		OrderID:  o.ID,
		ItemCode: code,
		Qty:      in.Qty,
		OKQty:    in.OKQty,
	})
	return nil
}

// ReplaceLines swaps all lines for a new set.
func (o *VendorDeptOrder) ReplaceLines(lines []VendorDeptLineInput) error {
	if len(lines) == 0 {
		return shared.NewDomainError("INVALID_LINES", "A vendor department order needs at least one line")
	}
	o.Lines = nil
	for _, in := range lines {
		if err := o.appendLine(in); err != nil {
			return err
		}
	}
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	o.AddDomainEvent(NewVendorDeptChangedEvent(o, "purchase.vendordept.updated"))
	return nil
}

// RecordInspection sets the vendor OK quantity on the line for an item
// code after the vendor's inspection report lands.
func (o *VendorDeptOrder) RecordInspection(itemCode string, okQty decimal.Decimal) error {
	if okQty.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "OK quantity cannot be negative")
	}
	code := reconcile.Key(itemCode)
	for i := range o.Lines {
		if reconcile.Key(o.Lines[i].ItemCode) == code {
			o.Lines[i].OKQty = okQty
			o.UpdatedAt = time.Now()
			o.IncrementVersion()
			o.AddDomainEvent(NewVendorDeptChangedEvent(o, "purchase.vendordept.updated"))
			return nil
		}
	}
	return shared.ErrNotFound
}

// Reconcile maps the order into the engine's snapshot shape.
func (o *VendorDeptOrder) Reconcile() reconcile.VendorDeptOrder {
	lines := make([]reconcile.VendorDeptLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, reconcile.VendorDeptLine{
			ItemCode: l.ItemCode,
			Qty:      l.Qty,
			OKQty:    l.OKQty,
		})
	}
	return reconcile.VendorDeptOrder{PONo: o.PONo, Lines: lines}
}

// VendorDeptChangedEvent fires on vendor department order changes.
type VendorDeptChangedEvent struct {
	shared.BaseDomainEvent
	PONo string `json:"po_no"`
}

// NewVendorDeptChangedEvent creates a VendorDeptChangedEvent
func NewVendorDeptChangedEvent(o *VendorDeptOrder, eventType string) *VendorDeptChangedEvent {
	return &VendorDeptChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "VendorDeptOrder", o.ID, o.UserID),
		PONo:            o.PONo,
	}
}
