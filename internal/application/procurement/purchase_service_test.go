package procurement

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/catalog"
	"github.com/stockline/backend/internal/domain/purchase"
	"github.com/stockline/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEntryRepository is a mock implementation of purchase.EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*purchase.Entry, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchase.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindAll(ctx context.Context, userID uuid.UUID) ([]purchase.Entry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]purchase.Entry), args.Error(1)
}

func (m *MockEntryRepository) Save(ctx context.Context, entry *purchase.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockEntryRepository) ReplaceAll(ctx context.Context, userID uuid.UUID, entries []purchase.Entry) error {
	args := m.Called(ctx, userID, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) ([]purchase.Entry, error) {
	args := m.Called(ctx, userID, poNo)
	return args.Get(0).([]purchase.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindByIndentNo(ctx context.Context, userID uuid.UUID, indentNo string) ([]purchase.Entry, error) {
	args := m.Called(ctx, userID, indentNo)
	return args.Get(0).([]purchase.Entry), args.Error(1)
}

// MockVendorDeptRepository is a mock implementation of purchase.VendorDeptRepository
type MockVendorDeptRepository struct {
	mock.Mock
}

func (m *MockVendorDeptRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*purchase.VendorDeptOrder, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchase.VendorDeptOrder), args.Error(1)
}

func (m *MockVendorDeptRepository) FindAll(ctx context.Context, userID uuid.UUID) ([]purchase.VendorDeptOrder, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]purchase.VendorDeptOrder), args.Error(1)
}

func (m *MockVendorDeptRepository) Save(ctx context.Context, order *purchase.VendorDeptOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockVendorDeptRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockVendorDeptRepository) ReplaceAll(ctx context.Context, userID uuid.UUID, orders []purchase.VendorDeptOrder) error {
	args := m.Called(ctx, userID, orders)
	return args.Error(0)
}

func (m *MockVendorDeptRepository) FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) (*purchase.VendorDeptOrder, error) {
	args := m.Called(ctx, userID, poNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchase.VendorDeptOrder), args.Error(1)
}

// MockItemRepository is a mock implementation of catalog.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*catalog.Item, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindAll(ctx context.Context, userID uuid.UUID) ([]catalog.Item, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockItemRepository) ReplaceAll(ctx context.Context, userID uuid.UUID, items []catalog.Item) error {
	args := m.Called(ctx, userID, items)
	return args.Error(0)
}

func (m *MockItemRepository) FindByCode(ctx context.Context, userID uuid.UUID, itemCode string) (*catalog.Item, error) {
	args := m.Called(ctx, userID, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByName(ctx context.Context, userID uuid.UUID, itemName string) (*catalog.Item, error) {
	args := m.Called(ctx, userID, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func knownItem(t *testing.T, userID uuid.UUID, code string) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(userID, code+" item", code)
	require.NoError(t, err)
	return item
}

func TestPurchaseService_CreateEntry(t *testing.T) {
	t.Run("creates entry against the item master", func(t *testing.T) {
		userID := uuid.New()
		entryRepo := new(MockEntryRepository)
		itemRepo := new(MockItemRepository)
		itemRepo.On("FindByCode", mock.Anything, userID, "MS-2MM").Return(knownItem(t, userID, "MS-2MM"), nil)
		entryRepo.On("Save", mock.Anything, mock.AnythingOfType("*purchase.Entry")).Return(nil)

		svc := NewPurchaseService(entryRepo, nil, itemRepo, nil)

		resp, err := svc.CreateEntry(context.Background(), userID, CreateEntryRequest{
			PONo:              "PO-101",
			SupplierName:      "Sharp Metals",
			IndentNo:          "S-8/25-01",
			ItemCode:          "MS-2MM",
			OriginalIndentQty: dec(50),
			PurchaseQty:       dec(40),
		})

		require.NoError(t, err)
		assert.Equal(t, "PO-101", resp.PONo)
		assert.Equal(t, "Open", resp.IndentStatus)
		entryRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown item code", func(t *testing.T) {
		userID := uuid.New()
		entryRepo := new(MockEntryRepository)
		itemRepo := new(MockItemRepository)
		itemRepo.On("FindByCode", mock.Anything, userID, "GHOST").Return(nil, shared.ErrNotFound)

		svc := NewPurchaseService(entryRepo, nil, itemRepo, nil)

		_, err := svc.CreateEntry(context.Background(), userID, CreateEntryRequest{
			PONo:     "PO-101",
			ItemCode: "GHOST",
		})

		require.ErrorIs(t, err, shared.ErrUnknownItemCode)
		entryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPurchaseService_UpdateEntry(t *testing.T) {
	t.Run("keeps PO number and item code", func(t *testing.T) {
		userID := uuid.New()
		entry, err := purchase.NewEntry(userID, "PO-101", "Sharp Metals", "S-8/25-01", "MS-2MM", dec(50), dec(40), purchase.StatusOpen)
		require.NoError(t, err)
		entry.ClearDomainEvents()

		entryRepo := new(MockEntryRepository)
		entryRepo.On("FindByID", mock.Anything, userID, entry.ID).Return(entry, nil)
		entryRepo.On("Save", mock.Anything, entry).Return(nil)

		svc := NewPurchaseService(entryRepo, nil, nil, nil)

		resp, err := svc.UpdateEntry(context.Background(), userID, entry.ID, UpdateEntryRequest{
			SupplierName:      "Apex Alloys",
			IndentNo:          "S-8/25-02",
			OriginalIndentQty: dec(60),
			PurchaseQty:       dec(55),
			IndentStatus:      "Partial",
		})

		require.NoError(t, err)
		assert.Equal(t, "PO-101", resp.PONo)
		assert.Equal(t, "MS-2MM", resp.ItemCode)
		assert.Equal(t, "Apex Alloys", resp.SupplierName)
		assert.Equal(t, "Partial", resp.IndentStatus)
	})

	t.Run("rejects negative quantities", func(t *testing.T) {
		userID := uuid.New()
		entry, err := purchase.NewEntry(userID, "PO-101", "", "", "MS-2MM", dec(50), dec(40), purchase.StatusOpen)
		require.NoError(t, err)

		entryRepo := new(MockEntryRepository)
		entryRepo.On("FindByID", mock.Anything, userID, entry.ID).Return(entry, nil)

		svc := NewPurchaseService(entryRepo, nil, nil, nil)

		_, err = svc.UpdateEntry(context.Background(), userID, entry.ID, UpdateEntryRequest{
			PurchaseQty: dec(-1),
		})

		require.Error(t, err)
		entryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPurchaseService_CreateVendorDept(t *testing.T) {
	t.Run("rejects second order for the same PO", func(t *testing.T) {
		userID := uuid.New()
		existing, err := purchase.NewVendorDeptOrder(userID, "PO-101", "Prime Coaters", []purchase.VendorDeptLineInput{
			{ItemCode: "MS-2MM", Qty: dec(20)},
		})
		require.NoError(t, err)

		vendorRepo := new(MockVendorDeptRepository)
		vendorRepo.On("FindByPONo", mock.Anything, userID, "PO-101").Return(existing, nil)

		svc := NewPurchaseService(nil, vendorRepo, nil, nil)

		_, err = svc.CreateVendorDept(context.Background(), userID, CreateVendorDeptRequest{
			PONo:       "PO-101",
			VendorName: "Prime Coaters",
			Lines:      []VendorDeptLineRequest{{ItemCode: "MS-2MM", Qty: dec(20)}},
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("creates order with lines", func(t *testing.T) {
		userID := uuid.New()
		vendorRepo := new(MockVendorDeptRepository)
		vendorRepo.On("FindByPONo", mock.Anything, userID, "PO-102").Return(nil, shared.ErrNotFound)
		vendorRepo.On("Save", mock.Anything, mock.AnythingOfType("*purchase.VendorDeptOrder")).Return(nil)

		svc := NewPurchaseService(nil, vendorRepo, nil, nil)

		resp, err := svc.CreateVendorDept(context.Background(), userID, CreateVendorDeptRequest{
			PONo:       "PO-102",
			VendorName: "Prime Coaters",
			Lines: []VendorDeptLineRequest{
				{ItemCode: "MS-2MM", Qty: dec(20)},
				{ItemCode: "CU-W1", Qty: dec(5), OKQty: dec(5)},
			},
		})

		require.NoError(t, err)
		assert.Len(t, resp.Lines, 2)
		vendorRepo.AssertExpectations(t)
	})
}

func TestPurchaseService_RecordInspection(t *testing.T) {
	t.Run("records OK quantity case-insensitively", func(t *testing.T) {
		userID := uuid.New()
		order, err := purchase.NewVendorDeptOrder(userID, "PO-101", "Prime Coaters", []purchase.VendorDeptLineInput{
			{ItemCode: "MS-2MM", Qty: dec(20)},
		})
		require.NoError(t, err)
		order.ClearDomainEvents()

		vendorRepo := new(MockVendorDeptRepository)
		vendorRepo.On("FindByID", mock.Anything, userID, order.ID).Return(order, nil)
		vendorRepo.On("Save", mock.Anything, order).Return(nil)

		svc := NewPurchaseService(nil, vendorRepo, nil, nil)

		resp, err := svc.RecordInspection(context.Background(), userID, order.ID, RecordInspectionRequest{
			ItemCode: " ms-2mm ",
			OKQty:    dec(18),
		})

		require.NoError(t, err)
		assert.True(t, resp.Lines[0].OKQty.Equal(dec(18)))
	})

	t.Run("unknown line is not found", func(t *testing.T) {
		userID := uuid.New()
		order, err := purchase.NewVendorDeptOrder(userID, "PO-101", "Prime Coaters", []purchase.VendorDeptLineInput{
			{ItemCode: "MS-2MM", Qty: dec(20)},
		})
		require.NoError(t, err)

		vendorRepo := new(MockVendorDeptRepository)
		vendorRepo.On("FindByID", mock.Anything, userID, order.ID).Return(order, nil)

		svc := NewPurchaseService(nil, vendorRepo, nil, nil)

		_, err = svc.RecordInspection(context.Background(), userID, order.ID, RecordInspectionRequest{
			ItemCode: "CU-W1",
			OKQty:    dec(3),
		})

		require.ErrorIs(t, err, shared.ErrNotFound)
		vendorRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
