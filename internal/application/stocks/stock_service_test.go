package stocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/shared"
	"github.com/stockline/backend/internal/domain/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStockRepository is a mock implementation of stock.Repository
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*stock.Record, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Record), args.Error(1)
}

func (m *MockStockRepository) FindAll(ctx context.Context, userID uuid.UUID) ([]stock.Record, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]stock.Record), args.Error(1)
}

func (m *MockStockRepository) Save(ctx context.Context, r *stock.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockStockRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockStockRepository) ReplaceAll(ctx context.Context, userID uuid.UUID, records []stock.Record) error {
	args := m.Called(ctx, userID, records)
	return args.Error(0)
}

func (m *MockStockRepository) FindByItemCode(ctx context.Context, userID uuid.UUID, itemCode string) ([]stock.Record, error) {
	args := m.Called(ctx, userID, itemCode)
	return args.Get(0).([]stock.Record), args.Error(1)
}

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func TestStockService_Create(t *testing.T) {
	t.Run("creates a baseline record", func(t *testing.T) {
		userID := uuid.New()
		repo := new(MockStockRepository)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*stock.Record")).Return(nil)

		svc := NewStockService(repo, nil, nil)

		resp, err := svc.Create(context.Background(), userID, CreateRecordRequest{
			ItemName:    "MS Sheet 2mm",
			ItemCode:    "MS-2MM",
			BaselineQty: dec(25),
		})

		require.NoError(t, err)
		assert.Equal(t, "MS-2MM", resp.ItemCode)
		assert.True(t, resp.BaselineQty.Equal(dec(25)))
		assert.True(t, resp.ClosingStock.IsZero())
	})

	t.Run("rejects a negative baseline", func(t *testing.T) {
		userID := uuid.New()
		repo := new(MockStockRepository)

		svc := NewStockService(repo, nil, nil)

		_, err := svc.Create(context.Background(), userID, CreateRecordRequest{
			ItemCode:    "MS-2MM",
			BaselineQty: dec(-5),
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestStockService_Update(t *testing.T) {
	t.Run("replaces the baseline and keeps the cached closing", func(t *testing.T) {
		userID := uuid.New()
		r, err := stock.NewRecord(userID, "MS Sheet 2mm", "MS-2MM", "", dec(25))
		require.NoError(t, err)
		r.CacheClosing(dec(30))
		r.ClearDomainEvents()

		repo := new(MockStockRepository)
		repo.On("FindByID", mock.Anything, userID, r.ID).Return(r, nil)
		repo.On("Save", mock.Anything, r).Return(nil)

		svc := NewStockService(repo, nil, nil)

		resp, err := svc.Update(context.Background(), userID, r.ID, UpdateRecordRequest{
			BaselineQty: dec(40),
		})

		require.NoError(t, err)
		assert.True(t, resp.BaselineQty.Equal(dec(40)))
		assert.True(t, resp.ClosingStock.Equal(dec(30)))
	})
}

func TestStockService_ReplaceAll(t *testing.T) {
	t.Run("swaps the whole baseline sheet", func(t *testing.T) {
		userID := uuid.New()
		repo := new(MockStockRepository)
		repo.On("ReplaceAll", mock.Anything, userID, mock.AnythingOfType("[]stock.Record")).Return(nil)

		svc := NewStockService(repo, nil, nil)

		responses, err := svc.ReplaceAll(context.Background(), userID, []CreateRecordRequest{
			{ItemName: "MS Sheet 2mm", ItemCode: "MS-2MM", BaselineQty: dec(25)},
			{ItemName: "Copper Wire", ItemCode: "CU-W1", BaselineQty: dec(10)},
		})

		require.NoError(t, err)
		assert.Len(t, responses, 2)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate item codes case-insensitively", func(t *testing.T) {
		userID := uuid.New()
		repo := new(MockStockRepository)

		svc := NewStockService(repo, nil, nil)

		_, err := svc.ReplaceAll(context.Background(), userID, []CreateRecordRequest{
			{ItemCode: "MS-2MM", BaselineQty: dec(25)},
			{ItemCode: " ms-2mm ", BaselineQty: dec(5)},
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_ITEM_CODE", domainErr.Code)
		repo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything, mock.Anything)
	})
}
