package reconciliation

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/indent"
	"github.com/stockline/backend/internal/domain/issue"
	"github.com/stockline/backend/internal/domain/purchase"
	"github.com/stockline/backend/internal/domain/receipt"
	"github.com/stockline/backend/internal/domain/reconcile"
	"github.com/stockline/backend/internal/domain/stock"
)

// SnapshotBuilder assembles the engine's world-view from the persisted
// collections. Each collection is loaded independently, so a snapshot
// can be momentarily inconsistent across collections; the engine is
// written to tolerate that and the next rebuild converges it.
type SnapshotBuilder struct {
	indentRepo       indent.Repository
	purchaseRepo     purchase.EntryRepository
	vendorDeptRepo   purchase.VendorDeptRepository
	psirRepo         receipt.PSIRRepository
	vsirRepo         receipt.VSIRRepository
	vendorIssueRepo  issue.VendorIssueRepository
	inHouseIssueRepo issue.InHouseIssueRepository
	stockRepo        stock.Repository
}

// NewSnapshotBuilder creates a SnapshotBuilder
func NewSnapshotBuilder(
	indentRepo indent.Repository,
	purchaseRepo purchase.EntryRepository,
	vendorDeptRepo purchase.VendorDeptRepository,
	psirRepo receipt.PSIRRepository,
	vsirRepo receipt.VSIRRepository,
	vendorIssueRepo issue.VendorIssueRepository,
	inHouseIssueRepo issue.InHouseIssueRepository,
	stockRepo stock.Repository,
) *SnapshotBuilder {
	return &SnapshotBuilder{
		indentRepo:       indentRepo,
		purchaseRepo:     purchaseRepo,
		vendorDeptRepo:   vendorDeptRepo,
		psirRepo:         psirRepo,
		vsirRepo:         vsirRepo,
		vendorIssueRepo:  vendorIssueRepo,
		inHouseIssueRepo: inHouseIssueRepo,
		stockRepo:        stockRepo,
	}
}

// Build loads every collection for a user and maps it into the
// engine's snapshot shape. Indents arrive in queue position order and
// stock records in creation order; both orders are load-bearing.
func (b *SnapshotBuilder) Build(ctx context.Context, userID uuid.UUID) (*reconcile.Snapshot, error) {
	indents, err := b.indentRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	purchases, err := b.purchaseRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	vendorDepts, err := b.vendorDeptRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	psirs, err := b.psirRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	vsirs, err := b.vsirRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	vendorIssues, err := b.vendorIssueRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	inHouseIssues, err := b.inHouseIssueRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	stocks, err := b.stockRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := &reconcile.Snapshot{
		Indents:          make([]reconcile.Indent, 0, len(indents)),
		Purchases:        make([]reconcile.PurchaseEntry, 0, len(purchases)),
		PSIRs:            make([]reconcile.PSIR, 0, len(psirs)),
		VSIRs:            make([]reconcile.VSIR, 0, len(vsirs)),
		VendorIssues:     make([]reconcile.VendorIssue, 0, len(vendorIssues)),
		VendorDeptOrders: make([]reconcile.VendorDeptOrder, 0, len(vendorDepts)),
		InHouseIssues:    make([]reconcile.InHouseIssue, 0, len(inHouseIssues)),
		Stocks:           make([]reconcile.StockRow, 0, len(stocks)),
	}
	for i := range indents {
		snap.Indents = append(snap.Indents, indents[i].Reconcile())
	}
	for i := range purchases {
		snap.Purchases = append(snap.Purchases, purchases[i].Reconcile())
	}
	for i := range vendorDepts {
		snap.VendorDeptOrders = append(snap.VendorDeptOrders, vendorDepts[i].Reconcile())
	}
	for i := range psirs {
		snap.PSIRs = append(snap.PSIRs, psirs[i].Reconcile())
	}
	for i := range vsirs {
		snap.VSIRs = append(snap.VSIRs, vsirs[i].Reconcile())
	}
	for i := range vendorIssues {
		snap.VendorIssues = append(snap.VendorIssues, vendorIssues[i].Reconcile())
	}
	for i := range inHouseIssues {
		snap.InHouseIssues = append(snap.InHouseIssues, inHouseIssues[i].Reconcile())
	}
	for i := range stocks {
		snap.Stocks = append(snap.Stocks, stocks[i].Reconcile())
	}
	return snap, nil
}
