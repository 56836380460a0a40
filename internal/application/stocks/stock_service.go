package stocks

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/catalog"
	"github.com/stockline/backend/internal/domain/reconcile"
	"github.com/stockline/backend/internal/domain/shared"
	"github.com/stockline/backend/internal/domain/stock"
)

// StockService handles hand-counted stock baselines. The cached closing
// figure on each record belongs to the reconciliation hub; this service
// only touches the baseline.
type StockService struct {
	stockRepo stock.Repository
	itemRepo  catalog.ItemRepository
	publisher shared.EventPublisher
}

// NewStockService creates a new StockService
func NewStockService(
	stockRepo stock.Repository,
	itemRepo catalog.ItemRepository,
	publisher shared.EventPublisher,
) *StockService {
	return &StockService{
		stockRepo: stockRepo,
		itemRepo:  itemRepo,
		publisher: publisher,
	}
}

// Create creates a stock record
func (s *StockService) Create(ctx context.Context, userID uuid.UUID, req CreateRecordRequest) (*RecordResponse, error) {
	if err := s.validateItemCode(ctx, userID, req.ItemCode); err != nil {
		return nil, err
	}

	r, err := stock.NewRecord(userID, req.ItemName, req.ItemCode, req.BatchNo, req.BaselineQty)
	if err != nil {
		return nil, err
	}
	if err := s.stockRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, r)

	resp := ToRecordResponse(r)
	return &resp, nil
}

// GetByID retrieves a stock record by ID
func (s *StockService) GetByID(ctx context.Context, userID, id uuid.UUID) (*RecordResponse, error) {
	r, err := s.stockRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToRecordResponse(r)
	return &resp, nil
}

// List retrieves the user's stock records in creation order
func (s *StockService) List(ctx context.Context, userID uuid.UUID) ([]RecordResponse, error) {
	records, err := s.stockRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]RecordResponse, len(records))
	for i := range records {
		responses[i] = ToRecordResponse(&records[i])
	}
	return responses, nil
}

// ListByItemCode retrieves stock records for one item code
func (s *StockService) ListByItemCode(ctx context.Context, userID uuid.UUID, itemCode string) ([]RecordResponse, error) {
	records, err := s.stockRepo.FindByItemCode(ctx, userID, itemCode)
	if err != nil {
		return nil, err
	}
	responses := make([]RecordResponse, len(records))
	for i := range records {
		responses[i] = ToRecordResponse(&records[i])
	}
	return responses, nil
}

// Update replaces a record's baseline figure
func (s *StockService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateRecordRequest) (*RecordResponse, error) {
	r, err := s.stockRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := r.SetBaseline(req.BaselineQty); err != nil {
		return nil, err
	}
	if err := s.stockRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, r)

	resp := ToRecordResponse(r)
	return &resp, nil
}

// Delete removes a stock record
func (s *StockService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	r, err := s.stockRepo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.stockRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, stock.NewRecordChangedEvent(r, "stock.record.deleted"))
	}
	return nil
}

// ReplaceAll swaps the whole baseline sheet in one import. Item codes
// must be unique within the import and known to the item master.
func (s *StockService) ReplaceAll(ctx context.Context, userID uuid.UUID, reqs []CreateRecordRequest) ([]RecordResponse, error) {
	seen := make(map[string]bool, len(reqs))
	records := make([]stock.Record, 0, len(reqs))
	for _, req := range reqs {
		if err := s.validateItemCode(ctx, userID, req.ItemCode); err != nil {
			return nil, err
		}
		r, err := stock.NewRecord(userID, req.ItemName, req.ItemCode, req.BatchNo, req.BaselineQty)
		if err != nil {
			return nil, err
		}
		key := reconcile.Key(r.ItemCode)
		if seen[key] {
			return nil, shared.NewDomainError("DUPLICATE_ITEM_CODE", "Item code appears more than once in the import")
		}
		seen[key] = true
		r.ClearDomainEvents()
		records = append(records, *r)
	}

	if err := s.stockRepo.ReplaceAll(ctx, userID, records); err != nil {
		return nil, err
	}
	if s.publisher != nil && len(records) > 0 {
		_ = s.publisher.Publish(ctx, stock.NewRecordChangedEvent(&records[0], "stock.record.imported"))
	}

	responses := make([]RecordResponse, len(records))
	for i := range records {
		responses[i] = ToRecordResponse(&records[i])
	}
	return responses, nil
}

func (s *StockService) validateItemCode(ctx context.Context, userID uuid.UUID, itemCode string) error {
	if s.itemRepo == nil {
		return nil
	}
	_, err := s.itemRepo.FindByCode(ctx, userID, itemCode)
	if errors.Is(err, shared.ErrNotFound) {
		return shared.ErrUnknownItemCode
	}
	return err
}

func (s *StockService) publishEvents(ctx context.Context, r *stock.Record) {
	if s.publisher == nil {
		return
	}
	events := r.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.publisher.Publish(ctx, events...)
	r.ClearDomainEvents()
}
