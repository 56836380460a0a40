package indents

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/indent"
)

// IndentLineRequest is one requested item line
type IndentLineRequest struct {
	Model    string          `json:"model" binding:"max=100"`
	ItemCode string          `json:"item_code" binding:"required,max=100"`
	Qty      decimal.Decimal `json:"qty" binding:"required"`
}

// CreateIndentRequest contains data for creating an indent. An empty
// IndentNo asks the service to generate the next number in the family.
type CreateIndentRequest struct {
	IndentNo      string              `json:"indent_no" binding:"max=50"`
	Date          string              `json:"date" binding:"max=20"`
	IndentBy      string              `json:"indent_by" binding:"max=100"`
	OANo          string              `json:"oa_no" binding:"max=50"`
	StartOASeries bool                `json:"start_oa_series"`
	Lines         []IndentLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateIndentRequest contains data for updating an indent
type UpdateIndentRequest struct {
	Date     string              `json:"date" binding:"max=20"`
	IndentBy string              `json:"indent_by" binding:"max=100"`
	OANo     string              `json:"oa_no" binding:"max=50"`
	Lines    []IndentLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// IndentLineResponse is the client shape of an indent line
type IndentLineResponse struct {
	ID       uuid.UUID       `json:"id"`
	Model    string          `json:"model"`
	ItemCode string          `json:"item_code"`
	Qty      decimal.Decimal `json:"qty"`
}

// IndentResponse is the client shape of an indent
type IndentResponse struct {
	ID        uuid.UUID            `json:"id"`
	IndentNo  string               `json:"indent_no"`
	Date      string               `json:"date"`
	IndentBy  string               `json:"indent_by"`
	OANo      string               `json:"oa_no"`
	Position  int                  `json:"position"`
	Lines     []IndentLineResponse `json:"lines"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// ToIndentResponse maps an indent aggregate to its client shape
func ToIndentResponse(ind *indent.Indent) IndentResponse {
	lines := make([]IndentLineResponse, len(ind.Lines))
	for i, l := range ind.Lines {
		lines[i] = IndentLineResponse{
			ID:       l.ID,
			Model:    l.Model,
			ItemCode: l.ItemCode,
			Qty:      l.Qty,
		}
	}
	return IndentResponse{
		ID:        ind.ID,
		IndentNo:  ind.IndentNo,
		Date:      ind.Date,
		IndentBy:  ind.IndentBy,
		OANo:      ind.OANo,
		Position:  ind.Position,
		Lines:     lines,
		CreatedAt: ind.CreatedAt,
		UpdatedAt: ind.UpdatedAt,
	}
}

func toLineInputs(lines []IndentLineRequest) []indent.LineInput {
	inputs := make([]indent.LineInput, len(lines))
	for i, l := range lines {
		inputs[i] = indent.LineInput{
			Model:    l.Model,
			ItemCode: l.ItemCode,
			Qty:      l.Qty,
		}
	}
	return inputs
}
