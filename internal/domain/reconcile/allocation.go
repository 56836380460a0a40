package reconcile

import (
	"github.com/shopspring/decimal"
)

// AllocationStatus says whether an indent line is fully satisfiable
// from stock at its position in the queue.
type AllocationStatus string

const (
	// StatusClosed means the stock available before this line covers
	// the full requested quantity.
	StatusClosed AllocationStatus = "Closed"
	// StatusOpen means the line is short; it keeps whatever partial
	// allocation was left.
	StatusOpen AllocationStatus = "Open"
)

// LineAllocation is the allocation outcome for one indent line.
type LineAllocation struct {
	IndentNo    string
	IndentIndex int
	LineIndex   int
	ItemCode    string
	Requested   decimal.Decimal
	// AvailableBefore is totalStock minus everything allocated to
	// earlier claims on the same item. Not clamped; a negative value
	// is a meaningful shortage signal.
	AvailableBefore decimal.Decimal
	// Allocated is the quantity this line actually receives:
	// min(max(0, AvailableBefore), Requested).
	Allocated decimal.Decimal
	// AvailableAfter is AvailableBefore - Requested, the display
	// delta. Deliberately unclamped, unlike Allocated.
	AvailableAfter decimal.Decimal
	Status         AllocationStatus
}

// Closed reports whether the line is fully satisfiable.
func (a LineAllocation) Closed() bool {
	return a.Status == StatusClosed
}

// AllocateIndents walks the indents in stored order and allocates the
// available stock per item code first-come-first-served. stockByCode
// maps canonical item-code keys (see Key) to total stock; item codes
// with no entry allocate zero and stay Open.
//
// The walk is deterministic and free of hidden state: calling it twice
// with the same inputs yields the same output, and neither argument is
// mutated.
func AllocateIndents(indents []Indent, stockByCode map[string]decimal.Decimal) []LineAllocation {
	results := make([]LineAllocation, 0)
	cumulative := make(map[string]decimal.Decimal)

	for indentIdx, ind := range indents {
		for lineIdx, line := range ind.Lines {
			code := Key(line.ItemCode)
			total := stockByCode[code] // zero value when absent

			allocatedSoFar := cumulative[code]
			availableBefore := total.Sub(allocatedSoFar)

			requested := line.Qty
			if requested.IsNegative() {
				// The editors reject non-positive quantities before
				// they reach this point; treat stragglers as zero.
				requested = decimal.Zero
			}

			allocated := decimal.Min(decimal.Max(decimal.Zero, availableBefore), requested)
			cumulative[code] = allocatedSoFar.Add(allocated)

			status := StatusOpen
			if availableBefore.GreaterThanOrEqual(requested) {
				status = StatusClosed
			}

			results = append(results, LineAllocation{
				IndentNo:        ind.IndentNo,
				IndentIndex:     indentIdx,
				LineIndex:       lineIdx,
				ItemCode:        line.ItemCode,
				Requested:       requested,
				AvailableBefore: availableBefore,
				Allocated:       allocated,
				AvailableAfter:  availableBefore.Sub(requested),
				Status:          status,
			})
		}
	}

	return results
}

// CumulativeAllocated returns how much stock is already claimed for an
// item code by all indents before position upToIndex. It replays the
// same first-come-first-served walk as AllocateIndents.
func CumulativeAllocated(indents []Indent, stockByCode map[string]decimal.Decimal, itemCode string, upToIndex int) decimal.Decimal {
	code := Key(itemCode)
	total := stockByCode[code]
	allocated := decimal.Zero

	for i := 0; i < upToIndex && i < len(indents); i++ {
		for _, line := range indents[i].Lines {
			if Key(line.ItemCode) != code {
				continue
			}
			availableBefore := total.Sub(allocated)
			qty := line.Qty
			if qty.IsNegative() {
				qty = decimal.Zero
			}
			allocated = allocated.Add(decimal.Min(decimal.Max(decimal.Zero, availableBefore), qty))
		}
	}

	return allocated
}

// RemainingStock returns the stock left for an item code after every
// indent has taken its allocation. Never negative.
func RemainingStock(indents []Indent, stockByCode map[string]decimal.Decimal, itemCode string) decimal.Decimal {
	code := Key(itemCode)
	total := stockByCode[code]
	allocated := CumulativeAllocated(indents, stockByCode, itemCode, len(indents))
	return decimal.Max(decimal.Zero, total.Sub(allocated))
}
