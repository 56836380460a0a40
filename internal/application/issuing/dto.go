package issuing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/issue"
	"github.com/stockline/backend/internal/domain/reconcile"
)

// VendorIssueLineRequest is one item line going out to a vendor
type VendorIssueLineRequest struct {
	ItemCode string          `json:"item_code" binding:"required,max=100"`
	Qty      decimal.Decimal `json:"qty" binding:"required"`
}

// CreateVendorIssueRequest contains data for creating a vendor issue.
// Empty IssueNo and DCNo fields ask the service to generate the next
// numbers in their series.
type CreateVendorIssueRequest struct {
	IssueNo    string                   `json:"issue_no" binding:"max=50"`
	PONo       string                   `json:"po_no" binding:"max=50"`
	BatchNo    string                   `json:"batch_no" binding:"max=50"`
	DCNo       string                   `json:"dc_no" binding:"max=50"`
	VendorName string                   `json:"vendor_name" binding:"max=200"`
	Date       string                   `json:"date" binding:"max=20"`
	Lines      []VendorIssueLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// AssignVendorBatchRequest stamps the vendor-side batch number
type AssignVendorBatchRequest struct {
	VendorBatchNo string `json:"vendor_batch_no" binding:"required,max=50"`
}

// VendorIssueLineResponse is the client shape of a vendor issue line
type VendorIssueLineResponse struct {
	ID       uuid.UUID       `json:"id"`
	ItemCode string          `json:"item_code"`
	Qty      decimal.Decimal `json:"qty"`
}

// VendorIssueResponse is the client shape of a vendor issue
type VendorIssueResponse struct {
	ID            uuid.UUID                 `json:"id"`
	IssueNo       string                    `json:"issue_no"`
	PONo          string                    `json:"po_no"`
	BatchNo       string                    `json:"batch_no"`
	VendorBatchNo string                    `json:"vendor_batch_no"`
	DCNo          string                    `json:"dc_no"`
	VendorName    string                    `json:"vendor_name"`
	Date          string                    `json:"date"`
	Lines         []VendorIssueLineResponse `json:"lines"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

// ToVendorIssueResponse maps a vendor issue to its client shape
func ToVendorIssueResponse(vi *issue.VendorIssue) VendorIssueResponse {
	lines := make([]VendorIssueLineResponse, len(vi.Lines))
	for i, l := range vi.Lines {
		lines[i] = VendorIssueLineResponse{
			ID:       l.ID,
			ItemCode: l.ItemCode,
			Qty:      l.Qty,
		}
	}
	return VendorIssueResponse{
		ID:            vi.ID,
		IssueNo:       vi.IssueNo,
		PONo:          vi.PONo,
		BatchNo:       vi.BatchNo,
		VendorBatchNo: vi.VendorBatchNo,
		DCNo:          vi.DCNo,
		VendorName:    vi.VendorName,
		Date:          vi.Date,
		Lines:         lines,
		CreatedAt:     vi.CreatedAt,
		UpdatedAt:     vi.UpdatedAt,
	}
}

// InHouseIssueLineRequest is one internally issued item line
type InHouseIssueLineRequest struct {
	ItemName        string          `json:"item_name" binding:"max=200"`
	ItemCode        string          `json:"item_code" binding:"required,max=100"`
	BatchNo         string          `json:"batch_no" binding:"max=50"`
	TransactionType string          `json:"transaction_type" binding:"required,oneof=Purchase Vendor Stock"`
	IssueQty        decimal.Decimal `json:"issue_qty" binding:"required"`
}

// CreateInHouseIssueRequest contains data for creating an in-house
// issue. Empty ReqNo and IssueNo fields ask the service to generate
// the next numbers in their series.
type CreateInHouseIssueRequest struct {
	ReqNo   string                    `json:"req_no" binding:"max=50"`
	IssueNo string                    `json:"issue_no" binding:"max=50"`
	PONo    string                    `json:"po_no" binding:"max=50"`
	Date    string                    `json:"date" binding:"max=20"`
	Lines   []InHouseIssueLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateInHouseIssueRequest contains data for updating an in-house
// issue. Requisition and issue numbers are immutable.
type UpdateInHouseIssueRequest struct {
	PONo  string                    `json:"po_no" binding:"max=50"`
	Date  string                    `json:"date" binding:"max=20"`
	Lines []InHouseIssueLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// InHouseIssueLineResponse is the client shape of an in-house line
type InHouseIssueLineResponse struct {
	ID              uuid.UUID       `json:"id"`
	ItemName        string          `json:"item_name"`
	ItemCode        string          `json:"item_code"`
	BatchNo         string          `json:"batch_no"`
	TransactionType string          `json:"transaction_type"`
	IssueQty        decimal.Decimal `json:"issue_qty"`
}

// InHouseIssueResponse is the client shape of an in-house issue
type InHouseIssueResponse struct {
	ID        uuid.UUID                  `json:"id"`
	ReqNo     string                     `json:"req_no"`
	IssueNo   string                     `json:"issue_no"`
	PONo      string                     `json:"po_no"`
	Date      string                     `json:"date"`
	Lines     []InHouseIssueLineResponse `json:"lines"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// ToInHouseIssueResponse maps an in-house issue to its client shape
func ToInHouseIssueResponse(ih *issue.InHouseIssue) InHouseIssueResponse {
	lines := make([]InHouseIssueLineResponse, len(ih.Lines))
	for i, l := range ih.Lines {
		lines[i] = InHouseIssueLineResponse{
			ID:              l.ID,
			ItemName:        l.ItemName,
			ItemCode:        l.ItemCode,
			BatchNo:         l.BatchNo,
			TransactionType: string(l.TransactionType),
			IssueQty:        l.IssueQty,
		}
	}
	return InHouseIssueResponse{
		ID:        ih.ID,
		ReqNo:     ih.ReqNo,
		IssueNo:   ih.IssueNo,
		PONo:      ih.PONo,
		Date:      ih.Date,
		Lines:     lines,
		CreatedAt: ih.CreatedAt,
		UpdatedAt: ih.UpdatedAt,
	}
}

func toVendorIssueInputs(lines []VendorIssueLineRequest) []issue.VendorIssueLineInput {
	inputs := make([]issue.VendorIssueLineInput, len(lines))
	for i, l := range lines {
		inputs[i] = issue.VendorIssueLineInput{
			ItemCode: l.ItemCode,
			Qty:      l.Qty,
		}
	}
	return inputs
}

func toInHouseIssueInputs(lines []InHouseIssueLineRequest) []issue.InHouseIssueLineInput {
	inputs := make([]issue.InHouseIssueLineInput, len(lines))
	for i, l := range lines {
		inputs[i] = issue.InHouseIssueLineInput{
			ItemName:        l.ItemName,
			ItemCode:        l.ItemCode,
			BatchNo:         l.BatchNo,
			TransactionType: reconcile.TransactionType(l.TransactionType),
			IssueQty:        l.IssueQty,
		}
	}
	return inputs
}
