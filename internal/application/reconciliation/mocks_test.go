package reconciliation

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/indent"
	"github.com/stockline/backend/internal/domain/issue"
	"github.com/stockline/backend/internal/domain/purchase"
	"github.com/stockline/backend/internal/domain/receipt"
	"github.com/stockline/backend/internal/domain/stock"
	"github.com/stretchr/testify/mock"
)

// MockIndentRepository is a mock implementation of indent.Repository
type MockIndentRepository struct {
	mock.Mock
}

func (m *MockIndentRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*indent.Indent, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*indent.Indent), args.Error(1)
}

func (m *MockIndentRepository) FindAll(ctx context.Context, userID uuid.UUID) ([]indent.Indent, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]indent.Indent), args.Error(1)
}

func (m *MockIndentRepository) Save(ctx context.Context, ind *indent.Indent) error {
	args := m.Called(ctx, ind)
	return args.Error(0)
}

func (m *MockIndentRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockIndentRepository) ReplaceAll(ctx context.Context, userID uuid.UUID, indents []indent.Indent) error {
	args := m.Called(ctx, userID, indents)
	return args.Error(0)
}

func (m *MockIndentRepository) FindByIndentNo(ctx context.Context, userID uuid.UUID, indentNo string) (*indent.Indent, error) {
	args := m.Called(ctx, userID, indentNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*indent.Indent), args.Error(1)
}

func (m *MockIndentRepository) NextPosition(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// MockPurchaseEntryRepository is a mock implementation of purchase.EntryRepository
type MockPurchaseEntryRepository struct {
	mock.Mock
}

func (m *MockPurchaseEntryRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*purchase.Entry, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchase.Entry), args.Error(1)
}

func (m *MockPurchaseEntryRepository) FindAll(ctx context.Context, userID uuid.UUID) ([]purchase.Entry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]purchase.Entry), args.Error(1)
}

func (m *MockPurchaseEntryRepository) Save(ctx context.Context, entry *purchase.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockPurchaseEntryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockPurchaseEntryRepository) ReplaceAll(ctx context.Context, userID uuid.UUID, entries []purchase.Entry) error {
	args := m.Called(ctx, userID, entries)
	return args.Error(0)
}

func (m *MockPurchaseEntryRepository) FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) ([]purchase.Entry, error) {
	args := m.Called(ctx, userID, poNo)
	return args.Get(0).([]purchase.Entry), args.Error(1)
}

func (m *MockPurchaseEntryRepository) FindByIndentNo(ctx context.Context, userID uuid.UUID, indentNo string) ([]purchase.Entry, error) {
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

// MockPSIRRepository is a mock implementation of receipt.PSIRRepository
type MockPSIRRepository struct {
	mock.Mock
}

func (m *MockPSIRRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*receipt.PSIR, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.PSIR), args.Error(1)
}

func (m *MockPSIRRepository) FindAll(ctx context.Context, userID uuid.UUID) ([]receipt.PSIR, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]receipt.PSIR), args.Error(1)
}

func (m *MockPSIRRepository) Save(ctx context.Context, r *receipt.PSIR) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPSIRRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockPSIRRepository) ReplaceAll(ctx context.Context, userID uuid.UUID, reports []receipt.PSIR) error {
	args := m.Called(ctx, userID, reports)
	return args.Error(0)
}

func (m *MockPSIRRepository) FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) ([]receipt.PSIR, error) {
	args := m.Called(ctx, userID, poNo)
	return args.Get(0).([]receipt.PSIR), args.Error(1)
}

func (m *MockPSIRRepository) FindByBatchNo(ctx context.Context, userID uuid.UUID, batchNo string) ([]receipt.PSIR, error) {
	args := m.Called(ctx, userID, batchNo)
	return args.Get(0).([]receipt.PSIR), args.Error(1)
}

// MockVSIRRepository is a mock implementation of receipt.VSIRRepository
type MockVSIRRepository struct {
	mock.Mock
}

func (m *MockVSIRRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*receipt.VSIR, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.VSIR), args.Error(1)
}

func (m *MockVSIRRepository) FindAll(ctx context.Context, userID uuid.UUID) ([]receipt.VSIR, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]receipt.VSIR), args.Error(1)
}

func (m *MockVSIRRepository) Save(ctx context.Context, v *receipt.VSIR) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVSIRRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockVSIRRepository) ReplaceAll(ctx context.Context, userID uuid.UUID, reports []receipt.VSIR) error {
	args := m.Called(ctx, userID, reports)
	return args.Error(0)
}

func (m *MockVSIRRepository) FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) ([]receipt.VSIR, error) {
	args := m.Called(ctx, userID, poNo)
	return args.Get(0).([]receipt.VSIR), args.Error(1)
}

// MockVendorIssueRepository is a mock implementation of issue.VendorIssueRepository
type MockVendorIssueRepository struct {
	mock.Mock
}

func (m *MockVendorIssueRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*issue.VendorIssue, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*issue.VendorIssue), args.Error(1)
}

func (m *MockVendorIssueRepository) FindAll(ctx context.Context, userID uuid.UUID) ([]issue.VendorIssue, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]issue.VendorIssue), args.Error(1)
}

func (m *MockVendorIssueRepository) Save(ctx context.Context, vi *issue.VendorIssue) error {
	args := m.Called(ctx, vi)
	return args.Error(0)
}

func (m *MockVendorIssueRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockVendorIssueRepository) ReplaceAll(ctx context.Context, userID uuid.UUID, issues []issue.VendorIssue) error {
	args := m.Called(ctx, userID, issues)
	return args.Error(0)
}

func (m *MockVendorIssueRepository) FindByIssueNo(ctx context.Context, userID uuid.UUID, issueNo string) (*issue.VendorIssue, error) {
	args := m.Called(ctx, userID, issueNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*issue.VendorIssue), args.Error(1)
}

func (m *MockVendorIssueRepository) FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) ([]issue.VendorIssue, error) {
	args := m.Called(ctx, userID, poNo)
	return args.Get(0).([]issue.VendorIssue), args.Error(1)
}

// MockInHouseIssueRepository is a mock implementation of issue.InHouseIssueRepository
type MockInHouseIssueRepository struct {
	mock.Mock
}

func (m *MockInHouseIssueRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*issue.InHouseIssue, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*issue.InHouseIssue), args.Error(1)
}

func (m *MockInHouseIssueRepository) FindAll(ctx context.Context, userID uuid.UUID) ([]issue.InHouseIssue, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]issue.InHouseIssue), args.Error(1)
}

func (m *MockInHouseIssueRepository) Save(ctx context.Context, ih *issue.InHouseIssue) error {
	args := m.Called(ctx, ih)
	return args.Error(0)
}

func (m *MockInHouseIssueRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockInHouseIssueRepository) ReplaceAll(ctx context.Context, userID uuid.UUID, issues []issue.InHouseIssue) error {
	args := m.Called(ctx, userID, issues)
	return args.Error(0)
}

func (m *MockInHouseIssueRepository) FindByIssueNo(ctx context.Context, userID uuid.UUID, issueNo string) (*issue.InHouseIssue, error) {
	args := m.Called(ctx, userID, issueNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*issue.InHouseIssue), args.Error(1)
}

func (m *MockInHouseIssueRepository) FindByReqNo(ctx context.Context, userID uuid.UUID, reqNo string) (*issue.InHouseIssue, error) {
	args := m.Called(ctx, userID, reqNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*issue.InHouseIssue), args.Error(1)
}

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
