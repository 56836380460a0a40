package reconcile

import (
	"sort"

	"github.com/shopspring/decimal"
)

// BatchAvailability describes how much of a batch's approved quantity
// is still drawable for one item code.
type BatchAvailability struct {
	BatchNo    string
	ItemCode   string
	OKQty      decimal.Decimal
	IssuedQty  decimal.Decimal
	PendingQty decimal.Decimal
}

// TotalOKQty sums the approved quantity for a batch + item code in the
// pool selected by txType:
//
//   - Purchase: PSIR lines, matched by the PSIR's batch number and the
//     line's item code, counting okQty with a fallback to qtyReceived
//     when okQty is absent or zero.
//   - Vendor: VSIR rows matched by vendor batch number and item code,
//     with the same fallback rule.
//   - Stock: the live closing stock for the item code; the batch
//     number does not narrow it.
func TotalOKQty(snap *Snapshot, batchNo, itemCode string, txType TransactionType) decimal.Decimal {
	batch := Key(batchNo)
	code := Key(itemCode)
	total := decimal.Zero

	switch txType {
	case TransactionPurchase:
		for _, psir := range snap.PSIRs {
			if Key(psir.BatchNo) != batch {
				continue
			}
			for _, line := range psir.Lines {
				if Key(line.ItemCode) == code {
					total = total.Add(okOrReceived(line.OKQty, line.QtyReceived))
				}
			}
		}
	case TransactionVendor:
		for _, vsir := range snap.VSIRs {
			if Key(vsir.VendorBatchNo) == batch && Key(vsir.ItemCode) == code {
				total = total.Add(okOrReceived(vsir.OKQty, vsir.ReceivedQty()))
			}
		}
	case TransactionStock:
		total = ClosingStockFor(snap, itemCode)
	}

	return total
}

// TotalIssuedQty sums everything already drawn from a batch for an
// item code: in-house issue lines matched on batch + item + matching
// transaction type, plus vendor issue lines whose issue-level batch
// number matches (the item code still matches at the line level).
// Vendor issues carry no transaction type, so they count against the
// batch regardless of txType.
func TotalIssuedQty(snap *Snapshot, batchNo, itemCode string, txType TransactionType) decimal.Decimal {
	batch := Key(batchNo)
	code := Key(itemCode)
	total := decimal.Zero

	for _, issue := range snap.InHouseIssues {
		for _, line := range issue.Lines {
			if Key(line.BatchNo) == batch && Key(line.ItemCode) == code && line.TransactionType == txType {
				total = total.Add(line.IssueQty)
			}
		}
	}

	for _, issue := range snap.VendorIssues {
		if Key(issue.BatchNo) != batch {
			continue
		}
		for _, line := range issue.Lines {
			if Key(line.ItemCode) == code {
				total = total.Add(line.Qty)
			}
		}
	}

	return total
}

// PendingQty is the approved quantity not yet issued for a batch,
// clamped at zero.
func PendingQty(snap *Snapshot, batchNo, itemCode string, txType TransactionType) decimal.Decimal {
	ok := TotalOKQty(snap, batchNo, itemCode, txType)
	issued := TotalIssuedQty(snap, batchNo, itemCode, txType)
	return decimal.Max(decimal.Zero, ok.Sub(issued))
}

// BatchDetail returns the full OK/issued/pending triple for one batch.
func BatchDetail(snap *Snapshot, batchNo, itemCode string, txType TransactionType) BatchAvailability {
	ok := TotalOKQty(snap, batchNo, itemCode, txType)
	issued := TotalIssuedQty(snap, batchNo, itemCode, txType)
	return BatchAvailability{
		BatchNo:    batchNo,
		ItemCode:   itemCode,
		OKQty:      ok,
		IssuedQty:  issued,
		PendingQty: decimal.Max(decimal.Zero, ok.Sub(issued)),
	}
}

// batchNosForItem collects the distinct batch numbers that carry the
// item in the pool for txType, sorted for stable display.
func batchNosForItem(snap *Snapshot, itemCode string, txType TransactionType) []string {
	code := Key(itemCode)
	seen := make(map[string]string)

	switch txType {
	case TransactionPurchase:
		for _, psir := range snap.PSIRs {
			if psir.BatchNo == "" {
				continue
			}
			for _, line := range psir.Lines {
				if Key(line.ItemCode) == code {
					seen[Key(psir.BatchNo)] = psir.BatchNo
					break
				}
			}
		}
	case TransactionVendor:
		for _, vsir := range snap.VSIRs {
			if vsir.VendorBatchNo != "" && Key(vsir.ItemCode) == code {
				seen[Key(vsir.VendorBatchNo)] = vsir.VendorBatchNo
			}
		}
	case TransactionStock:
		for _, row := range snap.Stocks {
			if row.BatchNo != "" && Key(row.ItemCode) == code {
				seen[Key(row.BatchNo)] = row.BatchNo
			}
		}
	}

	batches := make([]string, 0, len(seen))
	for _, original := range seen {
		batches = append(batches, original)
	}
	sort.Strings(batches)
	return batches
}

// AvailableBatches lists the batches for an item + transaction type
// that still have pending quantity. A batch with pending <= 0
// disappears from the list entirely.
func AvailableBatches(snap *Snapshot, itemCode string, txType TransactionType) []BatchAvailability {
	available := make([]BatchAvailability, 0)
	for _, batchNo := range batchNosForItem(snap, itemCode, txType) {
		detail := BatchDetail(snap, batchNo, itemCode, txType)
		if detail.PendingQty.GreaterThan(decimal.Zero) {
			available = append(available, detail)
		}
	}
	return available
}
