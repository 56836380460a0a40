package indent

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/reconcile"
	"github.com/stockline/backend/internal/domain/shared"
)

// Indent is a material request: an ordered list of item lines with the
// quantities production wants pulled from stock or purchased. Indents
// queue for stock allocation in creation order; Position pins that
// order so a snapshot rebuilt from the store replays allocation
// identically.
type Indent struct {
	shared.OwnedAggregateRoot
	IndentNo string `gorm:"not null;index"`
	Date     string
	IndentBy string
	OANo     string
	Position int    `gorm:"not null;index"`
	Lines    []Line `gorm:"foreignKey:IndentID;references:ID;constraint:OnDelete:CASCADE"`
}

// Line is one requested item on an indent.
type Line struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	IndentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Model    string
	ItemCode string          `gorm:"not null;index"`
	Qty      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (Indent) TableName() string {
	return "indents"
}

// TableName returns the table name for GORM
func (Line) TableName() string {
	return "indent_lines"
}

// LineInput carries one requested item into NewIndent.
type LineInput struct {
	Model    string
	ItemCode string
	Qty      decimal.Decimal
}

// NewIndent creates an indent with its lines. Quantities must be
// positive; the editors enforce that before the engine ever sees the
// data, and this constructor is where the contract is held.
func NewIndent(userID uuid.UUID, indentNo, date, indentBy, oaNo string, position int, lines []LineInput) (*Indent, error) {
	indentNo = strings.TrimSpace(indentNo)
	if indentNo == "" {
		return nil, shared.NewDomainError("INVALID_INDENT_NO", "Indent number is required")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("INVALID_LINES", "An indent needs at least one item line")
	}

	ind := &Indent{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		IndentNo:           indentNo,
		Date:               date,
		IndentBy:           indentBy,
		OANo:               oaNo,
		Position:           position,
		Lines:              make([]Line, 0, len(lines)),
	}
	for _, in := range lines {
		if err := ind.appendLine(in); err != nil {
			return nil, err
		}
	}
	ind.AddDomainEvent(NewIndentChangedEvent(ind, "indent.created"))
	return ind, nil
}

func (i *Indent) appendLine(in LineInput) error {
	code := strings.TrimSpace(in.ItemCode)
	if code == "" {
		return shared.NewDomainError("INVALID_ITEM_CODE", "Item code is required on every line")
	}
	if in.Qty.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Line quantity must be positive")
	}
	i.Lines = append(i.Lines, Line{
		ID:       uuid.New(),
		IndentID: i.ID,
		Model:    in.Model,
		ItemCode: code,
		Qty:      in.Qty,
	})
	return nil
}

// ReplaceLines swaps the full line set, revalidating each line.
func (i *Indent) ReplaceLines(lines []LineInput) error {
	if len(lines) == 0 {
		return shared.NewDomainError("INVALID_LINES", "An indent needs at least one item line")
	}
	i.Lines = i.Lines[:0]
	for _, in := range lines {
		if err := i.appendLine(in); err != nil {
			return err
		}
	}
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	i.AddDomainEvent(NewIndentChangedEvent(i, "indent.updated"))
	return nil
}

// Reconcile maps the indent into the engine's snapshot shape.
func (i *Indent) Reconcile() reconcile.Indent {
	lines := make([]reconcile.IndentLine, 0, len(i.Lines))
	for _, l := range i.Lines {
		lines = append(lines, reconcile.IndentLine{
			Model:    l.Model,
			ItemCode: l.ItemCode,
			Qty:      l.Qty,
		})
	}
	return reconcile.Indent{
		IndentNo: i.IndentNo,
		Date:     i.Date,
		IndentBy: i.IndentBy,
		OANo:     i.OANo,
		Lines:    lines,
	}
}

// IndentChangedEvent fires on indent create/update/delete.
type IndentChangedEvent struct {
	shared.BaseDomainEvent
	IndentNo string `json:"indent_no"`
}

// NewIndentChangedEvent creates an IndentChangedEvent
func NewIndentChangedEvent(ind *Indent, eventType string) *IndentChangedEvent {
	return &IndentChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "Indent", ind.ID, ind.UserID),
		IndentNo:        ind.IndentNo,
	}
}
