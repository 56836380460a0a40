package receiving

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/receipt"
)

// PSIRLineRequest is one received item line
type PSIRLineRequest struct {
	ItemName    string          `json:"item_name" binding:"max=200"`
	ItemCode    string          `json:"item_code" binding:"required,max=100"`
	QtyReceived decimal.Decimal `json:"qty_received"`
	OKQty       decimal.Decimal `json:"ok_qty"`
	RejectQty   decimal.Decimal `json:"reject_qty"`
}

// CreatePSIRRequest contains data for creating a purchase stock inward
// report. An empty BatchNo asks the service to generate the next batch
// number for the year.
type CreatePSIRRequest struct {
	PONo     string            `json:"po_no" binding:"required,max=50"`
	IndentNo string            `json:"indent_no" binding:"max=50"`
	BatchNo  string            `json:"batch_no" binding:"max=50"`
	Date     string            `json:"date" binding:"max=20"`
	Lines    []PSIRLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdatePSIRRequest contains data for updating a PSIR. PO and batch
// numbers are immutable.
type UpdatePSIRRequest struct {
	IndentNo string            `json:"indent_no" binding:"max=50"`
	Date     string            `json:"date" binding:"max=20"`
	Lines    []PSIRLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// PSIRLineResponse is the client shape of a PSIR line
type PSIRLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	ItemName    string          `json:"item_name"`
	ItemCode    string          `json:"item_code"`
	QtyReceived decimal.Decimal `json:"qty_received"`
	OKQty       decimal.Decimal `json:"ok_qty"`
	RejectQty   decimal.Decimal `json:"reject_qty"`
}

// PSIRResponse is the client shape of a PSIR
type PSIRResponse struct {
	ID        uuid.UUID          `json:"id"`
	PONo      string             `json:"po_no"`
	IndentNo  string             `json:"indent_no"`
	BatchNo   string             `json:"batch_no"`
	Date      string             `json:"date"`
	Lines     []PSIRLineResponse `json:"lines"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ToPSIRResponse maps a PSIR aggregate to its client shape
func ToPSIRResponse(r *receipt.PSIR) PSIRResponse {
	lines := make([]PSIRLineResponse, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = PSIRLineResponse{
			ID:          l.ID,
			ItemName:    l.ItemName,
			ItemCode:    l.ItemCode,
			QtyReceived: l.QtyReceived,
			OKQty:       l.OKQty,
			RejectQty:   l.RejectQty,
		}
	}
	return PSIRResponse{
		ID:        r.ID,
		PONo:      r.PONo,
		IndentNo:  r.IndentNo,
		BatchNo:   r.BatchNo,
		Date:      r.Date,
		Lines:     lines,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// CreateVSIRRequest contains data for creating a vendor stock inward
// report
type CreateVSIRRequest struct {
	PONo          string          `json:"po_no" binding:"required,max=50"`
	VendorBatchNo string          `json:"vendor_batch_no" binding:"max=50"`
	DCNo          string          `json:"dc_no" binding:"max=50"`
	Date          string          `json:"date" binding:"max=20"`
	ItemCode      string          `json:"item_code" binding:"required,max=100"`
	OKQty         decimal.Decimal `json:"ok_qty"`
	ReworkQty     decimal.Decimal `json:"rework_qty"`
	RejectQty     decimal.Decimal `json:"reject_qty"`
}

// UpdateVSIRRequest replaces the inspected split on a VSIR
type UpdateVSIRRequest struct {
	OKQty     decimal.Decimal `json:"ok_qty"`
	ReworkQty decimal.Decimal `json:"rework_qty"`
	RejectQty decimal.Decimal `json:"reject_qty"`
}

// VSIRResponse is the client shape of a VSIR
type VSIRResponse struct {
	ID            uuid.UUID       `json:"id"`
	PONo          string          `json:"po_no"`
	VendorBatchNo string          `json:"vendor_batch_no"`
	DCNo          string          `json:"dc_no"`
	Date          string          `json:"date"`
	ItemCode      string          `json:"item_code"`
	OKQty         decimal.Decimal `json:"ok_qty"`
	ReworkQty     decimal.Decimal `json:"rework_qty"`
	RejectQty     decimal.Decimal `json:"reject_qty"`
	ReceivedQty   decimal.Decimal `json:"received_qty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToVSIRResponse maps a VSIR aggregate to its client shape
func ToVSIRResponse(v *receipt.VSIR) VSIRResponse {
	return VSIRResponse{
		ID:            v.ID,
		PONo:          v.PONo,
		VendorBatchNo: v.VendorBatchNo,
		DCNo:          v.DCNo,
		Date:          v.Date,
		ItemCode:      v.ItemCode,
		OKQty:         v.OKQty,
		ReworkQty:     v.ReworkQty,
		RejectQty:     v.RejectQty,
		ReceivedQty:   v.ReceivedQty(),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func toPSIRLineInputs(lines []PSIRLineRequest) []receipt.PSIRLineInput {
	inputs := make([]receipt.PSIRLineInput, len(lines))
	for i, l := range lines {
		inputs[i] = receipt.PSIRLineInput{
			ItemName:    l.ItemName,
			ItemCode:    l.ItemCode,
			QtyReceived: l.QtyReceived,
			OKQty:       l.OKQty,
			RejectQty:   l.RejectQty,
		}
	}
	return inputs
}
