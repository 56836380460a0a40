package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalOKQty(t *testing.T) {
	t.Run("purchase pool sums matching PSIR lines", func(t *testing.T) {
		snap := &Snapshot{
			PSIRs: []PSIR{
				{BatchNo: "25/P1", Lines: []PSIRLine{
					{ItemCode: "C-1", OKQty: dec(40), QtyReceived: dec(50)},
					{ItemCode: "C-2", OKQty: dec(10), QtyReceived: dec(10)},
				}},
				{BatchNo: "25/P1", Lines: []PSIRLine{
					{ItemCode: "C-1", OKQty: dec(5), QtyReceived: dec(5)},
				}},
				{BatchNo: "25/P2", Lines: []PSIRLine{
					{ItemCode: "C-1", OKQty: dec(99), QtyReceived: dec(99)},
				}},
			},
		}

		ok := TotalOKQty(snap, "25/P1", "C-1", TransactionPurchase)
		assert.True(t, ok.Equal(dec(45)))
	})

	t.Run("falls back to qtyReceived when okQty is zero or absent", func(t *testing.T) {
		snap := &Snapshot{
			PSIRs: []PSIR{
				{BatchNo: "25/P1", Lines: []PSIRLine{
					{ItemCode: "C-1", QtyReceived: dec(30)}, // okQty never entered
				}},
			},
		}

		ok := TotalOKQty(snap, "25/P1", "C-1", TransactionPurchase)
		assert.True(t, ok.Equal(dec(30)))
	})

	t.Run("vendor pool matches VSIR by vendor batch number", func(t *testing.T) {
		snap := &Snapshot{
			VSIRs: []VSIR{
				{VendorBatchNo: "VB-1", ItemCode: "C-1", OKQty: dec(20)},
				{VendorBatchNo: "VB-1", ItemCode: "C-2", OKQty: dec(7)},
				{VendorBatchNo: "VB-2", ItemCode: "C-1", OKQty: dec(9)},
			},
		}

		ok := TotalOKQty(snap, "VB-1", "C-1", TransactionVendor)
		assert.True(t, ok.Equal(dec(20)))
	})

	t.Run("vendor fallback counts full received quantity", func(t *testing.T) {
		snap := &Snapshot{
			VSIRs: []VSIR{
				{VendorBatchNo: "VB-1", ItemCode: "C-1", ReworkQty: dec(3), RejectQty: dec(2)},
			},
		}

		ok := TotalOKQty(snap, "VB-1", "C-1", TransactionVendor)
		assert.True(t, ok.Equal(dec(5)))
	})

	t.Run("stock pool uses live closing stock and ignores batch", func(t *testing.T) {
		snap := &Snapshot{
			Stocks: []StockRow{{ItemCode: "C-1", BatchNo: "100", BaselineQty: dec(100)}},
		}

		ok := TotalOKQty(snap, "anything", "C-1", TransactionStock)
		assert.True(t, ok.Equal(dec(100)))
	})
}

func TestTotalIssuedQty(t *testing.T) {
	snap := &Snapshot{
		InHouseIssues: []InHouseIssue{
			{Lines: []InHouseIssueLine{
				{ItemCode: "C-1", BatchNo: "25/P1", TransactionType: TransactionPurchase, IssueQty: dec(12)},
				{ItemCode: "C-1", BatchNo: "25/P1", TransactionType: TransactionVendor, IssueQty: dec(4)},
				{ItemCode: "C-1", BatchNo: "25/P2", TransactionType: TransactionPurchase, IssueQty: dec(100)},
			}},
		},
		VendorIssues: []VendorIssue{
			// Batch number lives on the issue; items carry only codes.
			{BatchNo: "25/P1", Lines: []VendorIssueLine{
				{ItemCode: "C-1", Qty: dec(6)},
				{ItemCode: "C-2", Qty: dec(50)},
			}},
			{BatchNo: "25/P9", Lines: []VendorIssueLine{
				{ItemCode: "C-1", Qty: dec(77)},
			}},
		},
	}

	t.Run("sums in-house lines of matching type plus issue-level vendor matches", func(t *testing.T) {
		issued := TotalIssuedQty(snap, "25/P1", "C-1", TransactionPurchase)
		// 12 in-house Purchase + 6 vendor issue; the Vendor-typed line
		// and other batches stay out.
		assert.True(t, issued.Equal(dec(18)))
	})

	t.Run("vendor issues count regardless of transaction type", func(t *testing.T) {
		issued := TotalIssuedQty(snap, "25/P1", "C-1", TransactionVendor)
		assert.True(t, issued.Equal(dec(10))) // 4 in-house Vendor + 6 vendor issue
	})
}

func TestPendingQty(t *testing.T) {
	t.Run("pending is ok minus issued", func(t *testing.T) {
		snap := &Snapshot{
			PSIRs: []PSIR{{BatchNo: "25/P1", Lines: []PSIRLine{{ItemCode: "C-1", OKQty: dec(50)}}}},
			InHouseIssues: []InHouseIssue{{Lines: []InHouseIssueLine{
				{ItemCode: "C-1", BatchNo: "25/P1", TransactionType: TransactionPurchase, IssueQty: dec(20)},
			}}},
		}

		pending := PendingQty(snap, "25/P1", "C-1", TransactionPurchase)
		assert.True(t, pending.Equal(dec(30)))
	})

	t.Run("over-issued batches clamp to zero", func(t *testing.T) {
		snap := &Snapshot{
			PSIRs: []PSIR{{BatchNo: "25/P1", Lines: []PSIRLine{{ItemCode: "C-1", OKQty: dec(10)}}}},
			InHouseIssues: []InHouseIssue{{Lines: []InHouseIssueLine{
				{ItemCode: "C-1", BatchNo: "25/P1", TransactionType: TransactionPurchase, IssueQty: dec(25)},
			}}},
		}

		pending := PendingQty(snap, "25/P1", "C-1", TransactionPurchase)
		assert.True(t, pending.IsZero())
	})

	t.Run("unknown batch contributes zero, not an error", func(t *testing.T) {
		snap := &Snapshot{}
		assert.True(t, PendingQty(snap, "nope", "C-1", TransactionPurchase).IsZero())
	})

	t.Run("batch numbers match after trimming", func(t *testing.T) {
		snap := &Snapshot{
			PSIRs: []PSIR{{BatchNo: " 25/P1 ", Lines: []PSIRLine{{ItemCode: "C-1", OKQty: dec(5)}}}},
		}
		assert.True(t, PendingQty(snap, "25/P1", "C-1", TransactionPurchase).Equal(dec(5)))
	})
}

func TestAvailableBatches(t *testing.T) {
	snap := &Snapshot{
		PSIRs: []PSIR{
			{BatchNo: "25/P1", Lines: []PSIRLine{{ItemCode: "C-1", OKQty: dec(10)}}},
			{BatchNo: "25/P2", Lines: []PSIRLine{{ItemCode: "C-1", OKQty: dec(10)}}},
			{BatchNo: "25/P3", Lines: []PSIRLine{{ItemCode: "C-2", OKQty: dec(10)}}},
		},
		InHouseIssues: []InHouseIssue{{Lines: []InHouseIssueLine{
			// Fully drains 25/P1 for C-1.
			{ItemCode: "C-1", BatchNo: "25/P1", TransactionType: TransactionPurchase, IssueQty: dec(10)},
		}}},
	}

	t.Run("fully issued batches disappear from the selectable list", func(t *testing.T) {
		available := AvailableBatches(snap, "C-1", TransactionPurchase)
		require.Len(t, available, 1)
		assert.Equal(t, "25/P2", available[0].BatchNo)
		assert.True(t, available[0].PendingQty.Equal(dec(10)))
	})

	t.Run("other items' batches are not offered", func(t *testing.T) {
		available := AvailableBatches(snap, "C-2", TransactionPurchase)
		require.Len(t, available, 1)
		assert.Equal(t, "25/P3", available[0].BatchNo)
	})

	t.Run("all computed quantities stay non-negative", func(t *testing.T) {
		for _, txType := range []TransactionType{TransactionPurchase, TransactionVendor, TransactionStock} {
			for _, b := range AvailableBatches(snap, "C-1", txType) {
				assert.False(t, b.OKQty.IsNegative())
				assert.False(t, b.IssuedQty.IsNegative())
				assert.False(t, b.PendingQty.IsNegative())
			}
		}
	})
}

func TestBatchDetail(t *testing.T) {
	snap := &Snapshot{
		VSIRs: []VSIR{{VendorBatchNo: "VB-3", ItemCode: "C-1", OKQty: dec(30)}},
		InHouseIssues: []InHouseIssue{{Lines: []InHouseIssueLine{
			{ItemCode: "C-1", BatchNo: "VB-3", TransactionType: TransactionVendor, IssueQty: dec(12)},
		}}},
	}

	detail := BatchDetail(snap, "VB-3", "C-1", TransactionVendor)
	assert.True(t, detail.OKQty.Equal(dec(30)))
	assert.True(t, detail.IssuedQty.Equal(dec(12)))
	assert.True(t, detail.PendingQty.Equal(dec(18)))
}
