package reconcile

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Package reconcile implements the derived-quantity reconciliation
// engine: pure functions over in-memory snapshots of the document
// collections (indents, purchase entries, PSIR/VSIR receipts, vendor
// issues, in-house issues, stock records). Nothing in this package
// touches the store, holds state between calls, or mutates its inputs;
// every result is recomputed from scratch and clamped to be
// non-negative. Referential mismatches (an item code nothing else
// knows about, a batch with no receipt) contribute zero instead of
// failing.

// TransactionType selects which approved-quantity pool an in-house
// issue draws down.
type TransactionType string

const (
	// TransactionPurchase draws from PSIR-inspected purchase receipts.
	TransactionPurchase TransactionType = "Purchase"
	// TransactionVendor draws from VSIR-inspected vendor returns.
	TransactionVendor TransactionType = "Vendor"
	// TransactionStock draws from the manually tracked baseline stock.
	TransactionStock TransactionType = "Stock"
)

// Valid reports whether t is one of the three known pools.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionPurchase, TransactionVendor, TransactionStock:
		return true
	}
	return false
}

// Key canonicalizes a join key. All joins in this package are
// string-equality matches on trimmed, case-folded values. The original
// system mixed exact and trim+fold matching per call site; a single
// normalization is applied uniformly here.
func Key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// keysMatch reports whether either the name or code key of a record
// matches the respective non-empty target key.
func keysMatch(targetName, targetCode, name, code string) bool {
	return (targetName != "" && name == targetName) || (targetCode != "" && code == targetCode)
}

// IndentLine is one requested item on an indent.
type IndentLine struct {
	Model    string
	ItemCode string
	Qty      decimal.Decimal
}

// Indent is a material request. Slice order across indents is
// allocation priority: earlier indents have first claim on stock.
type Indent struct {
	IndentNo string
	Date     string
	IndentBy string
	OANo     string
	Lines    []IndentLine
}

// PurchaseEntry is one procurement line against a supplier.
type PurchaseEntry struct {
	PONo              string
	SupplierName      string
	IndentNo          string
	ItemCode          string
	OriginalIndentQty decimal.Decimal
	PurchaseQty       decimal.Decimal
	CurrentStock      decimal.Decimal
	IndentStatus      string
}

// PSIRLine is one inspected item on a purchase stock inward report.
type PSIRLine struct {
	ItemName    string
	ItemCode    string
	QtyReceived decimal.Decimal
	OKQty       decimal.Decimal
	RejectQty   decimal.Decimal
}

// PSIR is a goods-received record against a purchase order.
type PSIR struct {
	PONo     string
	IndentNo string
	BatchNo  string
	Lines    []PSIRLine
}

// VSIR is a goods-received record from a vendor rework cycle. Unlike
// PSIR it is a flat row, one item per record.
type VSIR struct {
	PONo          string
	VendorBatchNo string
	ItemCode      string
	OKQty         decimal.Decimal
	ReworkQty     decimal.Decimal
	RejectQty     decimal.Decimal
}

// ReceivedQty returns the full quantity that came back from the
// vendor, inspected or not.
func (v VSIR) ReceivedQty() decimal.Decimal {
	return v.OKQty.Add(v.ReworkQty).Add(v.RejectQty)
}

// VendorIssueLine is one item on a vendor issue.
type VendorIssueLine struct {
	ItemCode string
	Qty      decimal.Decimal
}

// VendorIssue is material physically sent out to a vendor. The batch
// number lives on the issue, not the line; issued-quantity lookups
// match it at the issue level. That asymmetry with in-house issues is
// part of the business process and is preserved deliberately.
type VendorIssue struct {
	PONo          string
	BatchNo       string
	VendorBatchNo string
	DCNo          string
	Lines         []VendorIssueLine
}

// VendorDeptLine is one item on a vendor department order, carrying
// both the ordered quantity and the vendor-inspected OK quantity.
type VendorDeptLine struct {
	ItemCode string
	Qty      decimal.Decimal
	OKQty    decimal.Decimal
}

// VendorDeptOrder is a processing order placed on a vendor department.
type VendorDeptOrder struct {
	PONo  string
	Lines []VendorDeptLine
}

// InHouseIssueLine is one item issued internally. TransactionType
// selects which pool the issue depletes; BatchNo identifies the lot
// (or, for Stock-type issues, the stock bucket) it was drawn from.
type InHouseIssueLine struct {
	ItemName        string
	ItemCode        string
	BatchNo         string
	TransactionType TransactionType
	IssueQty        decimal.Decimal
}

// InHouseIssue is an internal material issue.
type InHouseIssue struct {
	ReqNo   string
	IssueNo string
	PONo    string
	Lines   []InHouseIssueLine
}

// StockRow is a stock record as entered. Only ItemName/ItemCode/
// BatchNo/BaselineQty are inputs; StoredClosing is whatever the store
// last persisted and is advisory at best — every computation here
// prefers the live figure.
type StockRow struct {
	ItemName      string
	ItemCode      string
	BatchNo       string
	BaselineQty   decimal.Decimal
	StoredClosing decimal.Decimal
}

// Snapshot is the full world-view the engine computes over. Collection
// subscriptions deliver snapshots independently, so a Snapshot may be
// mutually inconsistent across collections (a vendor issue visible
// before its VSIR, for example). Every computation is safe to rerun on
// such a partial view; the next snapshot converges it.
type Snapshot struct {
	Indents          []Indent
	Purchases        []PurchaseEntry
	PSIRs            []PSIR
	VSIRs            []VSIR
	VendorIssues     []VendorIssue
	VendorDeptOrders []VendorDeptOrder
	InHouseIssues    []InHouseIssue
	Stocks           []StockRow
}

// okOrReceived applies the OK-quantity fallback rule: a line with no
// usable okQty counts its full received quantity instead.
func okOrReceived(ok, received decimal.Decimal) decimal.Decimal {
	if ok.GreaterThan(decimal.Zero) {
		return ok
	}
	return received
}
