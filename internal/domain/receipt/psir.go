package receipt

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/reconcile"
	"github.com/stockline/backend/internal/domain/shared"
)

// PSIR is a purchase stock inward report: goods received against a
// purchase order, inspected line by line. OKQty is what inspection
// cleared; lines whose inspection has not been recorded yet count their
// full received quantity downstream.
type PSIR struct {
	shared.OwnedAggregateRoot
	PONo     string `gorm:"not null;index"`
	IndentNo string `gorm:"index"`
	BatchNo  string `gorm:"not null;index"`
	Date     string
	Lines    []PSIRLine `gorm:"foreignKey:ReportID;references:ID;constraint:OnDelete:CASCADE"`
}

// PSIRLine is one inspected item on a PSIR.
type PSIRLine struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReportID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemName    string
	ItemCode    string          `gorm:"not null;index"`
	QtyReceived decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	OKQty       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	RejectQty   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (PSIR) TableName() string {
	return "psirs"
}

// TableName returns the table name for GORM
func (PSIRLine) TableName() string {
	return "psir_lines"
}

// PSIRLineInput carries one received item into NewPSIR.
type PSIRLineInput struct {
	ItemName    string
	ItemCode    string
	QtyReceived decimal.Decimal
	OKQty       decimal.Decimal
	RejectQty   decimal.Decimal
}

// NewPSIR creates a purchase stock inward report with its lines.
func NewPSIR(userID uuid.UUID, poNo, indentNo, batchNo, date string, lines []PSIRLineInput) (*PSIR, error) {
	poNo = strings.TrimSpace(poNo)
	batchNo = strings.TrimSpace(batchNo)
	if poNo == "" {
		return nil, shared.NewDomainError("INVALID_PO_NO", "PO number is required")
	}
	if batchNo == "" {
		return nil, shared.NewDomainError("INVALID_BATCH_NO", "Batch number is required")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("INVALID_LINES", "A PSIR needs at least one item line")
	}

	r := &PSIR{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		PONo:               poNo,
		IndentNo:           strings.TrimSpace(indentNo),
		BatchNo:            batchNo,
		Date:               date,
	}
	for _, in := range lines {
		if err := r.appendLine(in); err != nil {
			return nil, err
		}
	}
	r.AddDomainEvent(NewPSIRChangedEvent(r, "receipt.psir.created"))
	return r, nil
}

func (r *PSIR) appendLine(in PSIRLineInput) error {
	code := strings.TrimSpace(in.ItemCode)
	if code == "" {
		return shared.NewDomainError("INVALID_ITEM_CODE", "Item code is required on every line")
	}
	if in.QtyReceived.IsNegative() || in.OKQty.IsNegative() || in.RejectQty.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantities cannot be negative")
	}
	if in.OKQty.Add(in.RejectQty).GreaterThan(in.QtyReceived) {
		return shared.NewDomainError("INVALID_QUANTITY", "OK plus reject cannot exceed the received quantity")
	}
	r.Lines = append(r.Lines, PSIRLine{
		ID:          uuid.New(),
		ReportID:    r.ID,
		ItemName:    in.ItemName,
		ItemCode:    code,
		QtyReceived: in.QtyReceived,
		OKQty:       in.OKQty,
		RejectQty:   in.RejectQty,
	})
	return nil
}

// ReplaceLines swaps the full line set, revalidating each line.
func (r *PSIR) ReplaceLines(lines []PSIRLineInput) error {
	if len(lines) == 0 {
		return shared.NewDomainError("INVALID_LINES", "A PSIR needs at least one item line")
	}
	r.Lines = r.Lines[:0]
	for _, in := range lines {
		if err := r.appendLine(in); err != nil {
			return err
		}
	}
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	r.AddDomainEvent(NewPSIRChangedEvent(r, "receipt.psir.updated"))
	return nil
}

// Reconcile maps the report into the engine's snapshot shape.
func (r *PSIR) Reconcile() reconcile.PSIR {
	lines := make([]reconcile.PSIRLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, reconcile.PSIRLine{
			ItemName:    l.ItemName,
			ItemCode:    l.ItemCode,
			QtyReceived: l.QtyReceived,
			OKQty:       l.OKQty,
			RejectQty:   l.RejectQty,
		})
	}
	return reconcile.PSIR{
		PONo:     r.PONo,
		IndentNo: r.IndentNo,
		BatchNo:  r.BatchNo,
		Lines:    lines,
	}
}

// PSIRChangedEvent fires on PSIR create/update/delete.
type PSIRChangedEvent struct {
	shared.BaseDomainEvent
	PONo    string `json:"po_no"`
	BatchNo string `json:"batch_no"`
}

// NewPSIRChangedEvent creates a PSIRChangedEvent
func NewPSIRChangedEvent(r *PSIR, eventType string) *PSIRChangedEvent {
	return &PSIRChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "PSIR", r.ID, r.UserID),
		PONo:            r.PONo,
		BatchNo:         r.BatchNo,
	}
}
