package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/purchase"
)

// CreateEntryRequest contains data for creating a purchase entry
type CreateEntryRequest struct {
	PONo              string          `json:"po_no" binding:"required,max=50"`
	SupplierName      string          `json:"supplier_name" binding:"max=200"`
	IndentNo          string          `json:"indent_no" binding:"max=50"`
	ItemCode          string          `json:"item_code" binding:"required,max=100"`
	OriginalIndentQty decimal.Decimal `json:"original_indent_qty"`
	PurchaseQty       decimal.Decimal `json:"purchase_qty"`
	IndentStatus      string          `json:"indent_status" binding:"omitempty,oneof=Open Closed Partial"`
}

// UpdateEntryRequest contains data for updating a purchase entry. PO
// number and item code are immutable.
type UpdateEntryRequest struct {
	SupplierName      string          `json:"supplier_name" binding:"max=200"`
	IndentNo          string          `json:"indent_no" binding:"max=50"`
	OriginalIndentQty decimal.Decimal `json:"original_indent_qty"`
	PurchaseQty       decimal.Decimal `json:"purchase_qty"`
	IndentStatus      string          `json:"indent_status" binding:"omitempty,oneof=Open Closed Partial"`
}

// EntryResponse is the client shape of a purchase entry
type EntryResponse struct {
	ID                uuid.UUID       `json:"id"`
	PONo              string          `json:"po_no"`
	SupplierName      string          `json:"supplier_name"`
	IndentNo          string          `json:"indent_no"`
	ItemCode          string          `json:"item_code"`
	OriginalIndentQty decimal.Decimal `json:"original_indent_qty"`
	PurchaseQty       decimal.Decimal `json:"purchase_qty"`
	CurrentStock      decimal.Decimal `json:"current_stock"`
	IndentStatus      string          `json:"indent_status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToEntryResponse maps a purchase entry to its client shape
func ToEntryResponse(e *purchase.Entry) EntryResponse {
	return EntryResponse{
		ID:                e.ID,
		PONo:              e.PONo,
		SupplierName:      e.SupplierName,
		IndentNo:          e.IndentNo,
		ItemCode:          e.ItemCode,
		OriginalIndentQty: e.OriginalIndentQty,
		PurchaseQty:       e.PurchaseQty,
		CurrentStock:      e.CurrentStock,
		IndentStatus:      string(e.IndentStatus),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

// VendorDeptLineRequest is one line on a vendor department order
type VendorDeptLineRequest struct {
	ItemCode string          `json:"item_code" binding:"required,max=100"`
	Qty      decimal.Decimal `json:"qty"`
	OKQty    decimal.Decimal `json:"ok_qty"`
}

// CreateVendorDeptRequest contains data for creating a vendor
// department order
type CreateVendorDeptRequest struct {
	PONo       string                  `json:"po_no" binding:"required,max=50"`
	VendorName string                  `json:"vendor_name" binding:"max=200"`
	Lines      []VendorDeptLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateVendorDeptRequest contains data for updating a vendor
// department order
type UpdateVendorDeptRequest struct {
	VendorName string                  `json:"vendor_name" binding:"max=200"`
	Lines      []VendorDeptLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// RecordInspectionRequest carries a vendor inspection result
type RecordInspectionRequest struct {
	ItemCode string          `json:"item_code" binding:"required,max=100"`
	OKQty    decimal.Decimal `json:"ok_qty"`
}

// VendorDeptLineResponse is the client shape of a vendor dept line
type VendorDeptLineResponse struct {
	ID       uuid.UUID       `json:"id"`
	ItemCode string          `json:"item_code"`
	Qty      decimal.Decimal `json:"qty"`
	OKQty    decimal.Decimal `json:"ok_qty"`
}

// VendorDeptResponse is the client shape of a vendor department order
type VendorDeptResponse struct {
	ID         uuid.UUID                `json:"id"`
	PONo       string                   `json:"po_no"`
	VendorName string                   `json:"vendor_name"`
	Lines      []VendorDeptLineResponse `json:"lines"`
	CreatedAt  time.Time                `json:"created_at"`
	UpdatedAt  time.Time                `json:"updated_at"`
}

// ToVendorDeptResponse maps a vendor department order to its client shape
func ToVendorDeptResponse(o *purchase.VendorDeptOrder) VendorDeptResponse {
	lines := make([]VendorDeptLineResponse, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = VendorDeptLineResponse{
			ID:       l.ID,
			ItemCode: l.ItemCode,
			Qty:      l.Qty,
			OKQty:    l.OKQty,
		}
	}
	return VendorDeptResponse{
		ID:         o.ID,
		PONo:       o.PONo,
		VendorName: o.VendorName,
		Lines:      lines,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
