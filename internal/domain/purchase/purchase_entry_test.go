package purchase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestNewEntry(t *testing.T) {
	userID := uuid.New()

	t.Run("creates entry with defaults", func(t *testing.T) {
		e, err := NewEntry(userID, "PO-7", "Acme", "S-8/25-01", "C-1", dec(50), dec(50), "")

		require.NoError(t, err)
		assert.Equal(t, StatusOpen, e.IndentStatus)
		assert.Equal(t, userID, e.UserID)
		assert.NotEmpty(t, e.GetDomainEvents())
	})

	t.Run("rejects blank PO number", func(t *testing.T) {
		_, err := NewEntry(userID, " ", "Acme", "", "C-1", dec(1), dec(1), StatusOpen)
		require.Error(t, err)
	})

	t.Run("rejects negative quantities", func(t *testing.T) {
		_, err := NewEntry(userID, "PO-7", "Acme", "", "C-1", dec(-1), dec(1), StatusOpen)
		require.Error(t, err)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := NewEntry(userID, "PO-7", "Acme", "", "C-1", dec(1), dec(1), "Done")
		require.Error(t, err)
	})
}

func TestEntry_RefreshStock(t *testing.T) {
	newEntry := func(t *testing.T, demand int64) *Entry {
		t.Helper()
		e, err := NewEntry(uuid.New(), "PO-7", "Acme", "S-8/25-01", "C-1", dec(demand), dec(demand), StatusOpen)
		require.NoError(t, err)
		e.ClearDomainEvents()
		return e
	}

	t.Run("closes when stock covers demand", func(t *testing.T) {
		e := newEntry(t, 50)
		changed := e.RefreshStock(dec(60))

		assert.True(t, changed)
		assert.Equal(t, StatusClosed, e.IndentStatus)
		assert.True(t, e.CurrentStock.Equal(dec(60)))
	})

	t.Run("partial when stock covers some demand", func(t *testing.T) {
		e := newEntry(t, 50)
		assert.True(t, e.RefreshStock(dec(20)))
		assert.Equal(t, StatusPartial, e.IndentStatus)
	})

	t.Run("stays open at zero stock", func(t *testing.T) {
		e := newEntry(t, 50)
		assert.False(t, e.RefreshStock(decimal.Zero))
		assert.Equal(t, StatusOpen, e.IndentStatus)
	})

	t.Run("no change is reported as no change", func(t *testing.T) {
		e := newEntry(t, 50)
		require.True(t, e.RefreshStock(dec(20)))
		e.ClearDomainEvents()
		version := e.GetVersion()

		assert.False(t, e.RefreshStock(dec(20)))
		assert.Equal(t, version, e.GetVersion())
		assert.Empty(t, e.GetDomainEvents())
	})

	t.Run("zero demand keeps the recorded status", func(t *testing.T) {
		e, err := NewEntry(uuid.New(), "PO-8", "Acme", "", "C-2", decimal.Zero, dec(10), StatusClosed)
		require.NoError(t, err)

		e.RefreshStock(decimal.Zero)
		assert.Equal(t, StatusClosed, e.IndentStatus)
	})
}

func TestVendorDeptOrder(t *testing.T) {
	userID := uuid.New()

	t.Run("creation validates lines", func(t *testing.T) {
		_, err := NewVendorDeptOrder(userID, "PO-9", "Plating Co", nil)
		require.Error(t, err)

		_, err = NewVendorDeptOrder(userID, "PO-9", "Plating Co", []VendorDeptLineInput{
			{ItemCode: "", Qty: dec(5)},
		})
		require.Error(t, err)
	})

	t.Run("inspection updates OK quantity by code", func(t *testing.T) {
		o, err := NewVendorDeptOrder(userID, "PO-9", "Plating Co", []VendorDeptLineInput{
			{ItemCode: "C-1", Qty: dec(30)},
		})
		require.NoError(t, err)

		require.NoError(t, o.RecordInspection(" c-1 ", dec(28)))
		assert.True(t, o.Lines[0].OKQty.Equal(dec(28)))

		assert.Error(t, o.RecordInspection("C-404", dec(1)))
	})

	t.Run("reconcile carries qty and okQty", func(t *testing.T) {
		o, err := NewVendorDeptOrder(userID, "PO-9", "Plating Co", []VendorDeptLineInput{
			{ItemCode: "C-1", Qty: dec(30), OKQty: dec(28)},
		})
		require.NoError(t, err)

		snap := o.Reconcile()
		assert.Equal(t, "PO-9", snap.PONo)
		require.Len(t, snap.Lines, 1)
		assert.True(t, snap.Lines[0].Qty.Equal(dec(30)))
		assert.True(t, snap.Lines[0].OKQty.Equal(dec(28)))
	})
}
