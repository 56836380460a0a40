package issue

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/reconcile"
	"github.com/stockline/backend/internal/domain/shared"
)

// VendorIssue is material physically sent out to a vendor for rework,
// travelling under a delivery chit. The source batch number lives on
// the issue, not on its lines; all of an issue's lines drew from the
// same inward batch.
type VendorIssue struct {
	shared.OwnedAggregateRoot
	IssueNo       string `gorm:"not null;index"`
	PONo          string `gorm:"index"`
	BatchNo       string `gorm:"index"`
	VendorBatchNo string `gorm:"index"`
	DCNo          string
	VendorName    string
	Date          string
	Lines         []VendorIssueLine `gorm:"foreignKey:IssueID;references:ID;constraint:OnDelete:CASCADE"`
}

// VendorIssueLine is one item on a vendor issue.
type VendorIssueLine struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	IssueID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemCode string    `gorm:"not null;index"`
	Qty      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (VendorIssue) TableName() string {
	return "vendor_issues"
}

// TableName returns the table name for GORM
func (VendorIssueLine) TableName() string {
	return "vendor_issue_lines"
}

// VendorIssueLineInput carries one issued item into NewVendorIssue.
type VendorIssueLineInput struct {
	ItemCode string
	Qty      decimal.Decimal
}

// NewVendorIssue creates a vendor issue with its lines.
func NewVendorIssue(userID uuid.UUID, issueNo, poNo, batchNo, vendorBatchNo, dcNo, vendorName, date string, lines []VendorIssueLineInput) (*VendorIssue, error) {
	issueNo = strings.TrimSpace(issueNo)
	if issueNo == "" {
		return nil, shared.NewDomainError("INVALID_ISSUE_NO", "Issue number is required")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("INVALID_LINES", "A vendor issue needs at least one item line")
	}

	vi := &VendorIssue{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		IssueNo:            issueNo,
		PONo:               strings.TrimSpace(poNo),
		BatchNo:            strings.TrimSpace(batchNo),
		VendorBatchNo:      strings.TrimSpace(vendorBatchNo),
		DCNo:               strings.TrimSpace(dcNo),
		VendorName:         vendorName,
		Date:               date,
	}
	for _, in := range lines {
		if err := vi.appendLine(in); err != nil {
			return nil, err
		}
	}
	vi.AddDomainEvent(NewVendorIssueChangedEvent(vi, "issue.vendor.created"))
	return vi, nil
}

func (vi *VendorIssue) appendLine(in VendorIssueLineInput) error {
	code := strings.TrimSpace(in.ItemCode)
	if code == "" {
		return shared.NewDomainError("INVALID_ITEM_CODE", "Item code is required on every line")
	}
	if in.Qty.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Line quantity must be positive")
	}
	vi.Lines = append(vi.Lines, VendorIssueLine{
		ID:       uuid.New(),
		IssueID:  vi.ID,
		ItemCode: code,
		Qty:      in.Qty,
	})
	return nil
}

// AssignVendorBatch stamps the vendor-side batch number once the vendor
// acknowledges receipt. Later VSIRs quote this number back.
func (vi *VendorIssue) AssignVendorBatch(vendorBatchNo string) error {
	vendorBatchNo = strings.TrimSpace(vendorBatchNo)
	if vendorBatchNo == "" {
		return shared.NewDomainError("INVALID_BATCH_NO", "Vendor batch number is required")
	}
	vi.VendorBatchNo = vendorBatchNo
	vi.UpdatedAt = time.Now()
	vi.IncrementVersion()
	vi.AddDomainEvent(NewVendorIssueChangedEvent(vi, "issue.vendor.updated"))
	return nil
}

// Reconcile maps the issue into the engine's snapshot shape.
func (vi *VendorIssue) Reconcile() reconcile.VendorIssue {
	lines := make([]reconcile.VendorIssueLine, 0, len(vi.Lines))
	for _, l := range vi.Lines {
		lines = append(lines, reconcile.VendorIssueLine{
			ItemCode: l.ItemCode,
			Qty:      l.Qty,
		})
	}
	return reconcile.VendorIssue{
		PONo:          vi.PONo,
		BatchNo:       vi.BatchNo,
		VendorBatchNo: vi.VendorBatchNo,
		DCNo:          vi.DCNo,
		Lines:         lines,
	}
}

// VendorIssueChangedEvent fires on vendor issue create/update/delete.
type VendorIssueChangedEvent struct {
	shared.BaseDomainEvent
	IssueNo string `json:"issue_no"`
}

// NewVendorIssueChangedEvent creates a VendorIssueChangedEvent
func NewVendorIssueChangedEvent(vi *VendorIssue, eventType string) *VendorIssueChangedEvent {
	return &VendorIssueChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "VendorIssue", vi.ID, vi.UserID),
		IssueNo:         vi.IssueNo,
	}
}
