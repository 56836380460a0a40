package issue

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/reconcile"
	"github.com/stockline/backend/internal/domain/shared"
)

// InHouseIssue is an internal material issue raised against a
// requisition. Each line names the pool it draws down (Purchase,
// Vendor or Stock) and the batch it came from, so batch pending
// figures net correctly.
type InHouseIssue struct {
	shared.OwnedAggregateRoot
	ReqNo   string `gorm:"not null;index"`
	IssueNo string `gorm:"not null;index"`
	PONo    string `gorm:"index"`
	Date    string
	Lines   []InHouseIssueLine `gorm:"foreignKey:IssueID;references:ID;constraint:OnDelete:CASCADE"`
}

// InHouseIssueLine is one item issued internally.
type InHouseIssueLine struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	IssueID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemName        string
	ItemCode        string                    `gorm:"not null;index"`
	BatchNo         string                    `gorm:"index"`
	TransactionType reconcile.TransactionType `gorm:"not null"`
	IssueQty        decimal.Decimal           `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (InHouseIssue) TableName() string {
	return "inhouse_issues"
}

// TableName returns the table name for GORM
func (InHouseIssueLine) TableName() string {
	return "inhouse_issue_lines"
}

// InHouseIssueLineInput carries one issued item into NewInHouseIssue.
type InHouseIssueLineInput struct {
	ItemName        string
	ItemCode        string
	BatchNo         string
	TransactionType reconcile.TransactionType
	IssueQty        decimal.Decimal
}

// NewInHouseIssue creates an in-house issue with its lines.
func NewInHouseIssue(userID uuid.UUID, reqNo, issueNo, poNo, date string, lines []InHouseIssueLineInput) (*InHouseIssue, error) {
	reqNo = strings.TrimSpace(reqNo)
	issueNo = strings.TrimSpace(issueNo)
	if reqNo == "" {
		return nil, shared.NewDomainError("INVALID_REQ_NO", "Requisition number is required")
	}
	if issueNo == "" {
		return nil, shared.NewDomainError("INVALID_ISSUE_NO", "Issue number is required")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("INVALID_LINES", "An in-house issue needs at least one item line")
	}

	ih := &InHouseIssue{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		ReqNo:              reqNo,
		IssueNo:            issueNo,
		PONo:               strings.TrimSpace(poNo),
		Date:               date,
	}
	for _, in := range lines {
		if err := ih.appendLine(in); err != nil {
			return nil, err
		}
	}
	ih.AddDomainEvent(NewInHouseIssueChangedEvent(ih, "issue.inhouse.created"))
	return ih, nil
}

func (ih *InHouseIssue) appendLine(in InHouseIssueLineInput) error {
	code := strings.TrimSpace(in.ItemCode)
	if code == "" {
		return shared.NewDomainError("INVALID_ITEM_CODE", "Item code is required on every line")
	}
	if !in.TransactionType.Valid() {
		return shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Transaction type must be Purchase, Vendor or Stock")
	}
	if in.IssueQty.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Issue quantity must be positive")
	}
	ih.Lines = append(ih.Lines, InHouseIssueLine{
		ID:              uuid.New(),
		IssueID:         ih.ID,
		ItemName:        in.ItemName,
		ItemCode:        code,
		BatchNo:         strings.TrimSpace(in.BatchNo),
		TransactionType: in.TransactionType,
		IssueQty:        in.IssueQty,
	})
	return nil
}

// ReplaceLines swaps the full line set, revalidating each line.
func (ih *InHouseIssue) ReplaceLines(lines []InHouseIssueLineInput) error {
	if len(lines) == 0 {
		return shared.NewDomainError("INVALID_LINES", "An in-house issue needs at least one item line")
	}
	ih.Lines = ih.Lines[:0]
	for _, in := range lines {
		if err := ih.appendLine(in); err != nil {
			return err
		}
	}
	ih.UpdatedAt = time.Now()
	ih.IncrementVersion()
	ih.AddDomainEvent(NewInHouseIssueChangedEvent(ih, "issue.inhouse.updated"))
	return nil
}

// Reconcile maps the issue into the engine's snapshot shape.
func (ih *InHouseIssue) Reconcile() reconcile.InHouseIssue {
	lines := make([]reconcile.InHouseIssueLine, 0, len(ih.Lines))
	for _, l := range ih.Lines {
		lines = append(lines, reconcile.InHouseIssueLine{
			ItemName:        l.ItemName,
			ItemCode:        l.ItemCode,
			BatchNo:         l.BatchNo,
			TransactionType: l.TransactionType,
			IssueQty:        l.IssueQty,
		})
	}
	return reconcile.InHouseIssue{
		ReqNo:   ih.ReqNo,
		IssueNo: ih.IssueNo,
		PONo:    ih.PONo,
		Lines:   lines,
	}
}

// InHouseIssueChangedEvent fires on in-house issue create/update/delete.
type InHouseIssueChangedEvent struct {
	shared.BaseDomainEvent
	IssueNo string `json:"issue_no"`
	ReqNo   string `json:"req_no"`
}

// NewInHouseIssueChangedEvent creates an InHouseIssueChangedEvent
func NewInHouseIssueChangedEvent(ih *InHouseIssue, eventType string) *InHouseIssueChangedEvent {
	return &InHouseIssueChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "InHouseIssue", ih.ID, ih.UserID),
		IssueNo:         ih.IssueNo,
		ReqNo:           ih.ReqNo,
	}
}
