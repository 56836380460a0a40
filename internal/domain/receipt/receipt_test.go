package receipt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestNewPSIR(t *testing.T) {
	userID := uuid.New()

	t.Run("creates report with lines", func(t *testing.T) {
		r, err := NewPSIR(userID, "PO-1", "S-8/25-01", "25/P1", "2025-08-10", []PSIRLineInput{
			{ItemName: "Bracket", ItemCode: "C-1", QtyReceived: dec(50), OKQty: dec(48), RejectQty: dec(2)},
		})

		require.NoError(t, err)
		assert.Equal(t, "25/P1", r.BatchNo)
		assert.Len(t, r.Lines, 1)
		assert.NotEmpty(t, r.GetDomainEvents())
	})

	t.Run("rejects blank batch number", func(t *testing.T) {
		_, err := NewPSIR(userID, "PO-1", "", "  ", "", []PSIRLineInput{
			{ItemCode: "C-1", QtyReceived: dec(1)},
		})
		require.Error(t, err)
	})

	t.Run("rejects inspection split exceeding received", func(t *testing.T) {
		_, err := NewPSIR(userID, "PO-1", "", "25/P1", "", []PSIRLineInput{
			{ItemCode: "C-1", QtyReceived: dec(10), OKQty: dec(8), RejectQty: dec(5)},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceed")
	})

	t.Run("uninspected line is allowed", func(t *testing.T) {
		r, err := NewPSIR(userID, "PO-1", "", "25/P1", "", []PSIRLineInput{
			{ItemCode: "C-1", QtyReceived: dec(10)},
		})
		require.NoError(t, err)
		assert.True(t, r.Lines[0].OKQty.IsZero())
	})
}

func TestPSIR_Reconcile(t *testing.T) {
	r, err := NewPSIR(uuid.New(), "PO-2", "S-8/25-02", "25/P2", "", []PSIRLineInput{
		{ItemName: "Shaft", ItemCode: " C-7 ", QtyReceived: dec(20), OKQty: dec(19), RejectQty: dec(1)},
	})
	require.NoError(t, err)

	snap := r.Reconcile()
	assert.Equal(t, "PO-2", snap.PONo)
	assert.Equal(t, "25/P2", snap.BatchNo)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, "C-7", snap.Lines[0].ItemCode)
	assert.True(t, snap.Lines[0].OKQty.Equal(dec(19)))
}

func TestNewVSIR(t *testing.T) {
	userID := uuid.New()

	t.Run("creates report", func(t *testing.T) {
		v, err := NewVSIR(userID, "PO-3", "VB-1", "Vendor/01", "2025-08-12", "C-1", dec(25), dec(3), dec(2))

		require.NoError(t, err)
		assert.True(t, v.ReceivedQty().Equal(dec(30)))
		assert.NotEmpty(t, v.GetDomainEvents())
	})

	t.Run("rejects negative quantities", func(t *testing.T) {
		_, err := NewVSIR(userID, "PO-3", "", "", "", "C-1", dec(-1), decimal.Zero, decimal.Zero)
		require.Error(t, err)
	})

	t.Run("update replaces the split and bumps version", func(t *testing.T) {
		v, err := NewVSIR(userID, "PO-3", "VB-1", "", "", "C-1", dec(25), dec(3), dec(2))
		require.NoError(t, err)
		version := v.GetVersion()

		require.NoError(t, v.UpdateQuantities(dec(28), dec(2), decimal.Zero))
		assert.True(t, v.ReceivedQty().Equal(dec(30)))
		assert.Equal(t, version+1, v.GetVersion())

		assert.Error(t, v.UpdateQuantities(dec(-1), decimal.Zero, decimal.Zero))
	})
}

func TestVSIR_Reconcile(t *testing.T) {
	v, err := NewVSIR(uuid.New(), "PO-4", "VB-9", "Vendor/02", "", "C-2", dec(10), dec(1), dec(1))
	require.NoError(t, err)

	snap := v.Reconcile()
	assert.Equal(t, "PO-4", snap.PONo)
	assert.Equal(t, "VB-9", snap.VendorBatchNo)
	assert.True(t, snap.ReceivedQty().Equal(dec(12)))
}
