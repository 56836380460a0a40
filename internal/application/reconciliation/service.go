package reconciliation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/reconcile"
	"github.com/stockline/backend/internal/domain/shared"
)

// Service is the query facade over the reconciliation engine. It holds
// a per-user snapshot cache with a staleness window so a burst of reads
// (an allocation table plus a closing-stock table rendering together)
// reuses one snapshot instead of re-reading every collection per call.
type Service struct {
	builder *SnapshotBuilder
	stale   time.Duration

	mu    sync.RWMutex
	cache map[uuid.UUID]cachedSnapshot
}

type cachedSnapshot struct {
	snap    *reconcile.Snapshot
	builtAt time.Time
}

// NewService creates a reconciliation Service. stale is the maximum
// age a cached snapshot may be served at; zero disables caching.
func NewService(builder *SnapshotBuilder, stale time.Duration) *Service {
	return &Service{
		builder: builder,
		stale:   stale,
		cache:   make(map[uuid.UUID]cachedSnapshot),
	}
}

// Snapshot returns the engine snapshot for a user, rebuilding it when
// the cached one is missing or past the staleness window.
func (s *Service) Snapshot(ctx context.Context, userID uuid.UUID) (*reconcile.Snapshot, error) {
	if s.stale > 0 {
		s.mu.RLock()
		cached, ok := s.cache[userID]
		s.mu.RUnlock()
		if ok && time.Since(cached.builtAt) < s.stale {
			return cached.snap, nil
		}
	}

	snap, err := s.builder.Build(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.stale > 0 {
		s.mu.Lock()
		s.cache[userID] = cachedSnapshot{snap: snap, builtAt: time.Now()}
		s.mu.Unlock()
	}
	return snap, nil
}

// Invalidate drops a user's cached snapshot. The hub calls this after
// every debounced write burst.
func (s *Service) Invalidate(userID uuid.UUID) {
	s.mu.Lock()
	delete(s.cache, userID)
	s.mu.Unlock()
}

// Allocations replays the first-come-first-served stock allocation
// across the user's indent queue.
func (s *Service) Allocations(ctx context.Context, userID uuid.UUID) ([]reconcile.LineAllocation, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return reconcile.AllocateIndents(snap.Indents, reconcile.ClosingStockByCode(snap)), nil
}

// StockSummary computes the full derived roll-up for every stock
// record, in stored order.
func (s *Service) StockSummary(ctx context.Context, userID uuid.UUID) ([]reconcile.StockComputation, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]reconcile.StockComputation, 0, len(snap.Stocks))
	for _, row := range snap.Stocks {
		out = append(out, reconcile.ComputeStock(snap, row.ItemName, row.ItemCode, row.BatchNo, row.BaselineQty))
	}
	return out, nil
}

// ClosingStockFor returns the live closing stock for one item code.
func (s *Service) ClosingStockFor(ctx context.Context, userID uuid.UUID, itemCode string) (decimal.Decimal, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return reconcile.ClosingStockFor(snap, itemCode), nil
}

// RemainingStock returns the stock left for an item code after the
// whole indent queue has taken its allocation.
func (s *Service) RemainingStock(ctx context.Context, userID uuid.UUID, itemCode string) (decimal.Decimal, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return reconcile.RemainingStock(snap.Indents, reconcile.ClosingStockByCode(snap), itemCode), nil
}

// BatchDetail returns the approved/issued/pending triple for one batch
// and item code in the selected pool.
func (s *Service) BatchDetail(ctx context.Context, userID uuid.UUID, batchNo, itemCode string, txType reconcile.TransactionType) (*reconcile.BatchAvailability, error) {
	if !txType.Valid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Transaction type must be Purchase, Vendor or Stock")
	}
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	detail := reconcile.BatchDetail(snap, batchNo, itemCode, txType)
	return &detail, nil
}

// AvailableBatches lists every batch with pending quantity left for an
// item code in the selected pool.
func (s *Service) AvailableBatches(ctx context.Context, userID uuid.UUID, itemCode string, txType reconcile.TransactionType) ([]reconcile.BatchAvailability, error) {
	if !txType.Valid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Transaction type must be Purchase, Vendor or Stock")
	}
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return reconcile.AvailableBatches(snap, itemCode, txType), nil
}
