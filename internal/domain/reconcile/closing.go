package reconcile

import (
	"github.com/shopspring/decimal"
)

// StockComputation is the full set of derived roll-ups for one stock
// record. Only BaselineQty comes from user input; everything else is
// reduced from the other collections at call time.
type StockComputation struct {
	ItemName    string
	ItemCode    string
	BatchNo     string
	BaselineQty decimal.Decimal

	IndentQty        decimal.Decimal
	PurchaseQty      decimal.Decimal
	VendorQty        decimal.Decimal
	PurStoreOKQty    decimal.Decimal
	VendorOKQty      decimal.Decimal
	InHouseIssuedQty decimal.Decimal
	VendorIssuedQty  decimal.Decimal
	ClosingStock     decimal.Decimal
}

// IndentQtyTotal sums the requested quantity across all indent lines
// for an item code.
func IndentQtyTotal(snap *Snapshot, itemCode string) decimal.Decimal {
	code := Key(itemCode)
	total := decimal.Zero
	for _, ind := range snap.Indents {
		for _, line := range ind.Lines {
			if Key(line.ItemCode) == code {
				total = total.Add(line.Qty)
			}
		}
	}
	return total
}

// PurchaseQtyTotal sums the ordered purchase quantity for an item code.
func PurchaseQtyTotal(snap *Snapshot, itemCode string) decimal.Decimal {
	code := Key(itemCode)
	total := decimal.Zero
	for _, entry := range snap.Purchases {
		if Key(entry.ItemCode) == code {
			total = total.Add(entry.PurchaseQty)
		}
	}
	return total
}

// PSIROKTotal sums inspected-OK purchase receipts for an item, matched
// by name or code, counting qtyReceived for lines that never got an
// okQty.
func PSIROKTotal(snap *Snapshot, itemName, itemCode string) decimal.Decimal {
	targetName := Key(itemName)
	targetCode := Key(itemCode)
	total := decimal.Zero
	for _, psir := range snap.PSIRs {
		for _, line := range psir.Lines {
			if keysMatch(targetName, targetCode, Key(line.ItemName), Key(line.ItemCode)) {
				total = total.Add(okOrReceived(line.OKQty, line.QtyReceived))
			}
		}
	}
	return total
}

// VendorIssuedTotal sums everything sent out to vendors for an item
// code.
func VendorIssuedTotal(snap *Snapshot, itemCode string) decimal.Decimal {
	code := Key(itemCode)
	total := decimal.Zero
	for _, issue := range snap.VendorIssues {
		for _, line := range issue.Lines {
			if Key(line.ItemCode) == code {
				total = total.Add(line.Qty)
			}
		}
	}
	return total
}

// VSIRReceivedTotal sums everything that came back from vendors for an
// item code, inspected or not (ok + rework + reject).
func VSIRReceivedTotal(snap *Snapshot, itemCode string) decimal.Decimal {
	code := Key(itemCode)
	total := decimal.Zero
	for _, vsir := range snap.VSIRs {
		if Key(vsir.ItemCode) == code {
			total = total.Add(vsir.ReceivedQty())
		}
	}
	return total
}

// VendorDeptQtyTotal sums the quantities ordered on vendor departments
// for an item code.
func VendorDeptQtyTotal(snap *Snapshot, itemCode string) decimal.Decimal {
	code := Key(itemCode)
	total := decimal.Zero
	for _, order := range snap.VendorDeptOrders {
		for _, line := range order.Lines {
			if Key(line.ItemCode) == code {
				total = total.Add(line.Qty)
			}
		}
	}
	return total
}

// VendorDeptOKTotal sums the vendor-inspected OK quantities for an
// item code.
func VendorDeptOKTotal(snap *Snapshot, itemCode string) decimal.Decimal {
	code := Key(itemCode)
	total := decimal.Zero
	for _, order := range snap.VendorDeptOrders {
		for _, line := range order.Lines {
			if Key(line.ItemCode) == code {
				total = total.Add(line.OKQty)
			}
		}
	}
	return total
}

// InHouseIssuedByType sums in-house issues for an item code limited to
// one transaction type.
func InHouseIssuedByType(snap *Snapshot, itemCode string, txType TransactionType) decimal.Decimal {
	code := Key(itemCode)
	total := decimal.Zero
	for _, issue := range snap.InHouseIssues {
		for _, line := range issue.Lines {
			if Key(line.ItemCode) == code && line.TransactionType == txType {
				total = total.Add(line.IssueQty)
			}
		}
	}
	return total
}

// InHouseIssuedTotal sums in-house issues for an item matched by name
// or code, across all transaction types.
func InHouseIssuedTotal(snap *Snapshot, itemName, itemCode string) decimal.Decimal {
	targetName := Key(itemName)
	targetCode := Key(itemCode)
	total := decimal.Zero
	for _, issue := range snap.InHouseIssues {
		for _, line := range issue.Lines {
			if keysMatch(targetName, targetCode, Key(line.ItemName), Key(line.ItemCode)) {
				total = total.Add(line.IssueQty)
			}
		}
	}
	return total
}

// InHouseIssuedStockOnly sums in-house issues flagged Stock for an
// item matched by name or code. These are the only issues that deplete
// the baseline pool directly.
func InHouseIssuedStockOnly(snap *Snapshot, itemName, itemCode string) decimal.Decimal {
	targetName := Key(itemName)
	targetCode := Key(itemCode)
	total := decimal.Zero
	for _, issue := range snap.InHouseIssues {
		for _, line := range issue.Lines {
			if line.TransactionType != TransactionStock {
				continue
			}
			if keysMatch(targetName, targetCode, Key(line.ItemName), Key(line.ItemCode)) {
				total = total.Add(line.IssueQty)
			}
		}
	}
	return total
}

// AdjustedPurStoreOK is the purchased-and-inspected pool net of what
// has left it, clamped at zero:
// max(0, psirOK - inHouseIssued(Purchase) - vendorIssued).
func AdjustedPurStoreOK(snap *Snapshot, itemName, itemCode string) decimal.Decimal {
	psirOK := PSIROKTotal(snap, itemName, itemCode)
	issuedPurchase := InHouseIssuedByType(snap, itemCode, TransactionPurchase)
	vendorIssued := VendorIssuedTotal(snap, itemCode)
	return decimal.Max(decimal.Zero, psirOK.Sub(issuedPurchase).Sub(vendorIssued))
}

// AdjustedVendorOK is the vendor-returned-and-inspected pool net of
// vendor-type in-house issues, clamped at zero.
func AdjustedVendorOK(snap *Snapshot, itemCode string) decimal.Decimal {
	deptOK := VendorDeptOKTotal(snap, itemCode)
	issuedVendor := InHouseIssuedByType(snap, itemCode, TransactionVendor)
	return decimal.Max(decimal.Zero, deptOK.Sub(issuedVendor))
}

// AdjustedVendorIssued is the vendor-issued quantity net of what has
// already come back through VSIR, clamped at zero.
func AdjustedVendorIssued(snap *Snapshot, itemCode string) decimal.Decimal {
	issued := VendorIssuedTotal(snap, itemCode)
	received := VSIRReceivedTotal(snap, itemCode)
	return decimal.Max(decimal.Zero, issued.Sub(received))
}

// ComputeStock derives the complete roll-up for one stock record. The
// closing stock is the net of the three pools an item can be drawn
// from:
//
//	closing = baseline + adjustedPurStoreOK + adjustedVendorOK - inHouseIssued(Stock)
func ComputeStock(snap *Snapshot, itemName, itemCode, batchNo string, baseline decimal.Decimal) StockComputation {
	purStoreOK := AdjustedPurStoreOK(snap, itemName, itemCode)
	vendorOK := AdjustedVendorOK(snap, itemCode)
	stockOnlyIssued := InHouseIssuedStockOnly(snap, itemName, itemCode)

	vendorIssued := VendorIssuedTotal(snap, itemCode)
	vendorDeptQty := VendorDeptQtyTotal(snap, itemCode)

	return StockComputation{
		ItemName:         itemName,
		ItemCode:         itemCode,
		BatchNo:          batchNo,
		BaselineQty:      baseline,
		IndentQty:        IndentQtyTotal(snap, itemCode),
		PurchaseQty:      PurchaseQtyTotal(snap, itemCode),
		VendorQty:        decimal.Max(decimal.Zero, vendorDeptQty.Sub(vendorIssued)),
		PurStoreOKQty:    purStoreOK,
		VendorOKQty:      vendorOK,
		InHouseIssuedQty: InHouseIssuedTotal(snap, itemName, itemCode),
		VendorIssuedQty:  AdjustedVendorIssued(snap, itemCode),
		ClosingStock:     baseline.Add(purStoreOK).Add(vendorOK).Sub(stockOnlyIssued),
	}
}

// ClosingStockFor returns the live closing stock for an item code:
// the computation above applied to the first stock record carrying the
// code, or zero when the item has no stock record at all. The stored
// closingStock column is never consulted.
func ClosingStockFor(snap *Snapshot, itemCode string) decimal.Decimal {
	code := Key(itemCode)
	for _, row := range snap.Stocks {
		if Key(row.ItemCode) == code {
			return ComputeStock(snap, row.ItemName, row.ItemCode, row.BatchNo, row.BaselineQty).ClosingStock
		}
	}
	return decimal.Zero
}

// ClosingStockByCode computes the live closing stock for every item
// code that has a stock record, keyed by canonical item-code key. This
// is the stock map AllocateIndents consumes.
func ClosingStockByCode(snap *Snapshot) map[string]decimal.Decimal {
	byCode := make(map[string]decimal.Decimal)
	for _, row := range snap.Stocks {
		code := Key(row.ItemCode)
		if code == "" {
			continue
		}
		if _, done := byCode[code]; done {
			// First record per item code wins, matching the original
			// lookup order.
			continue
		}
		byCode[code] = ComputeStock(snap, row.ItemName, row.ItemCode, row.BatchNo, row.BaselineQty).ClosingStock
	}
	return byCode
}
