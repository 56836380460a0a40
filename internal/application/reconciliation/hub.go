package reconciliation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/purchase"
	"github.com/stockline/backend/internal/domain/reconcile"
	"github.com/stockline/backend/internal/domain/shared"
	"github.com/stockline/backend/internal/domain/stock"
	"github.com/stockline/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Hub listens to every document-collection change on the event bus and,
// after a per-user debounce window, recomputes the user's derived
// figures: the snapshot cache is invalidated, purchase entries get
// their cached stock refreshed, stock records get their closing figure
// re-cached, and subscribers are nudged to re-read.
//
// A burst of writes (a spreadsheet-style bulk edit saving fifty rows)
// collapses into one recompute per window instead of fifty.
type Hub struct {
	service      *Service
	purchaseRepo purchase.EntryRepository
	stockRepo    stock.Repository
	cfg          config.ReconcileConfig
	logger       *zap.Logger

	mu      sync.Mutex
	timers  map[uuid.UUID]*time.Timer
	subs    map[uuid.UUID]map[int]chan struct{}
	nextSub int
	stopped bool
	wg      sync.WaitGroup
}

// NewHub creates a reconciliation Hub
func NewHub(
	service *Service,
	purchaseRepo purchase.EntryRepository,
	stockRepo stock.Repository,
	cfg config.ReconcileConfig,
	logger *zap.Logger,
) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		service:      service,
		purchaseRepo: purchaseRepo,
		stockRepo:    stockRepo,
		cfg:          cfg,
		logger:       logger,
		timers:       make(map[uuid.UUID]*time.Timer),
		subs:         make(map[uuid.UUID]map[int]chan struct{}),
	}
}

// EventTypes returns nil: the hub wants every event.
func (h *Hub) EventTypes() []string {
	return nil
}

// Handle schedules a recompute for the event's owner. Events without
// an owner (none of the document collections emit those) are ignored.
func (h *Hub) Handle(_ context.Context, event shared.DomainEvent) error {
	userID := event.UserID()
	if userID == uuid.Nil {
		return nil
	}
	h.schedule(userID)
	return nil
}

// Subscribe returns a channel that receives a nudge after every
// completed recompute for the user, and a disposer that must be called
// to release the subscription. The channel is buffered and never
// blocks the hub; a slow reader coalesces nudges.
func (h *Hub) Subscribe(userID uuid.UUID) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextSub++
	id := h.nextSub
	ch := make(chan struct{}, 1)
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[int]chan struct{})
	}
	h.subs[userID][id] = ch

	dispose := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if m, ok := h.subs[userID]; ok {
			delete(m, id)
			if len(m) == 0 {
				delete(h.subs, userID)
			}
		}
	}
	return ch, dispose
}

// Stop cancels pending debounce timers and waits for in-flight
// recomputes to finish.
func (h *Hub) Stop() {
	h.mu.Lock()
	h.stopped = true
	for userID, timer := range h.timers {
		timer.Stop()
		delete(h.timers, userID)
	}
	h.mu.Unlock()
	h.wg.Wait()
}

func (h *Hub) schedule(userID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return
	}
	if timer, ok := h.timers[userID]; ok {
		// Reset can race a fire already in flight; the worst case is
		// one extra recompute.
		timer.Reset(h.cfg.Debounce)
		return
	}
	h.timers[userID] = time.AfterFunc(h.cfg.Debounce, func() {
		h.mu.Lock()
		delete(h.timers, userID)
		stopped := h.stopped
		if !stopped {
			h.wg.Add(1)
		}
		h.mu.Unlock()
		if stopped {
			return
		}
		defer h.wg.Done()
		h.recompute(userID)
	})
}

func (h *Hub) recompute(userID uuid.UUID) {
	ctx := context.Background()
	h.service.Invalidate(userID)

	snap, err := h.service.Snapshot(ctx, userID)
	if err != nil {
		h.logger.Error("reconcile snapshot rebuild failed",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return
	}

	if h.cfg.RefreshPurchase {
		if err := h.refreshPurchaseEntries(ctx, userID, snap); err != nil {
			h.logger.Error("purchase stock refresh failed",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		}
	}
	if h.cfg.CacheClosing {
		if err := h.cacheClosingStock(ctx, userID, snap); err != nil {
			h.logger.Error("closing stock cache write failed",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		}
	}

	h.notify(userID)
}

// refreshPurchaseEntries pushes live closing stock back onto every
// purchase entry whose cached figure or derived status drifted.
func (h *Hub) refreshPurchaseEntries(ctx context.Context, userID uuid.UUID, snap *reconcile.Snapshot) error {
	entries, err := h.purchaseRepo.FindAll(ctx, userID)
	if err != nil {
		return err
	}
	byCode := reconcile.ClosingStockByCode(snap)
	for i := range entries {
		entry := &entries[i]
		live := byCode[reconcile.Key(entry.ItemCode)]
		if !entry.RefreshStock(live) {
			continue
		}
		// The hub is the writer here, not a user action; swallow the
		// change events so the bus does not feed the hub its own writes.
		entry.ClearDomainEvents()
		if err := h.purchaseRepo.Save(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

// cacheClosingStock persists the freshly computed closing figure on
// each stock record so exports and offline reads see a recent value.
func (h *Hub) cacheClosingStock(ctx context.Context, userID uuid.UUID, snap *reconcile.Snapshot) error {
	records, err := h.stockRepo.FindAll(ctx, userID)
	if err != nil {
		return err
	}
	byCode := reconcile.ClosingStockByCode(snap)
	for i := range records {
		record := &records[i]
		closing := byCode[reconcile.Key(record.ItemCode)]
		if !record.CacheClosing(closing) {
			continue
		}
		record.ClearDomainEvents()
		if err := h.stockRepo.Save(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hub) notify(userID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[userID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

var _ shared.EventHandler = (*Hub)(nil)
