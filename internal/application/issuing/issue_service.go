package issuing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockline/backend/internal/domain/catalog"
	"github.com/stockline/backend/internal/domain/issue"
	"github.com/stockline/backend/internal/domain/reconcile"
	"github.com/stockline/backend/internal/domain/shared"
)

// SnapshotProvider supplies the reconciliation snapshot used to check
// batch availability before an issue goes out.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, userID uuid.UUID) (*reconcile.Snapshot, error)
}

// IssueService handles vendor and in-house material issues. When a
// snapshot provider is wired in, creates against a named batch are
// refused once that batch has nothing pending; a nil provider skips
// the check and lets the figures go negative in the reports instead.
type IssueService struct {
	vendorRepo  issue.VendorIssueRepository
	inhouseRepo issue.InHouseIssueRepository
	itemRepo    catalog.ItemRepository
	snapshots   SnapshotProvider
	publisher   shared.EventPublisher
}

// NewIssueService creates a new IssueService
func NewIssueService(
	vendorRepo issue.VendorIssueRepository,
	inhouseRepo issue.InHouseIssueRepository,
	itemRepo catalog.ItemRepository,
	snapshots SnapshotProvider,
	publisher shared.EventPublisher,
) *IssueService {
	return &IssueService{
		vendorRepo:  vendorRepo,
		inhouseRepo: inhouseRepo,
		itemRepo:    itemRepo,
		snapshots:   snapshots,
		publisher:   publisher,
	}
}

// NextVendorIssueNo suggests the next vendor issue number.
func (s *IssueService) NextVendorIssueNo(ctx context.Context, userID uuid.UUID) (string, error) {
	issues, err := s.vendorRepo.FindAll(ctx, userID)
	if err != nil {
		return "", err
	}
	existing := make([]string, len(issues))
	for i := range issues {
		existing[i] = issues[i].IssueNo
	}
	return reconcile.VendorIssueSeq.Next(existing), nil
}

// NextDCNo suggests the next delivery chit number.
func (s *IssueService) NextDCNo(ctx context.Context, userID uuid.UUID) (string, error) {
	issues, err := s.vendorRepo.FindAll(ctx, userID)
	if err != nil {
		return "", err
	}
	existing := make([]string, len(issues))
	for i := range issues {
		existing[i] = issues[i].DCNo
	}
	return reconcile.DeliveryChitSeq.Next(existing), nil
}

// CreateVendorIssue creates a vendor issue. Empty issue and delivery
// chit numbers get the next ones in their series. When the request
// names a source batch and a snapshot provider is wired, every line
// must still have quantity pending in that batch's purchase pool.
func (s *IssueService) CreateVendorIssue(ctx context.Context, userID uuid.UUID, req CreateVendorIssueRequest) (*VendorIssueResponse, error) {
	for _, line := range req.Lines {
		if err := s.validateItemCode(ctx, userID, line.ItemCode); err != nil {
			return nil, err
		}
	}
	if req.BatchNo != "" {
		for _, line := range req.Lines {
			if err := s.checkBatchPending(ctx, userID, req.BatchNo, line.ItemCode, reconcile.TransactionPurchase); err != nil {
				return nil, err
			}
		}
	}

	issueNo := req.IssueNo
	if issueNo == "" {
		generated, err := s.NextVendorIssueNo(ctx, userID)
		if err != nil {
			return nil, err
		}
		issueNo = generated
	} else {
		existing, err := s.vendorRepo.FindByIssueNo(ctx, userID, issueNo)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, shared.ErrDuplicateSequence
		}
	}

	dcNo := req.DCNo
	if dcNo == "" {
		generated, err := s.NextDCNo(ctx, userID)
		if err != nil {
			return nil, err
		}
		dcNo = generated
	}

	vi, err := issue.NewVendorIssue(userID, issueNo, req.PONo, req.BatchNo, "", dcNo, req.VendorName, req.Date, toVendorIssueInputs(req.Lines))
	if err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Save(ctx, vi); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, vi)

	resp := ToVendorIssueResponse(vi)
	return &resp, nil
}

// GetVendorIssue retrieves a vendor issue by ID
func (s *IssueService) GetVendorIssue(ctx context.Context, userID, id uuid.UUID) (*VendorIssueResponse, error) {
	vi, err := s.vendorRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToVendorIssueResponse(vi)
	return &resp, nil
}

// ListVendorIssues retrieves the user's vendor issues in creation order
func (s *IssueService) ListVendorIssues(ctx context.Context, userID uuid.UUID) ([]VendorIssueResponse, error) {
	issues, err := s.vendorRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]VendorIssueResponse, len(issues))
	for i := range issues {
		responses[i] = ToVendorIssueResponse(&issues[i])
	}
	return responses, nil
}

// ListVendorIssuesByPO retrieves vendor issues against a PO number
func (s *IssueService) ListVendorIssuesByPO(ctx context.Context, userID uuid.UUID, poNo string) ([]VendorIssueResponse, error) {
	issues, err := s.vendorRepo.FindByPONo(ctx, userID, poNo)
	if err != nil {
		return nil, err
	}
	responses := make([]VendorIssueResponse, len(issues))
	for i := range issues {
		responses[i] = ToVendorIssueResponse(&issues[i])
	}
	return responses, nil
}

// AssignVendorBatch stamps the vendor-side batch number on an issue
// once the vendor acknowledges receipt.
func (s *IssueService) AssignVendorBatch(ctx context.Context, userID, id uuid.UUID, req AssignVendorBatchRequest) (*VendorIssueResponse, error) {
	vi, err := s.vendorRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := vi.AssignVendorBatch(req.VendorBatchNo); err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Save(ctx, vi); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, vi)

	resp := ToVendorIssueResponse(vi)
	return &resp, nil
}

// DeleteVendorIssue removes a vendor issue
func (s *IssueService) DeleteVendorIssue(ctx context.Context, userID, id uuid.UUID) error {
	vi, err := s.vendorRepo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.vendorRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, issue.NewVendorIssueChangedEvent(vi, "issue.vendor.deleted"))
	}
	return nil
}

// NextReqNo suggests the next requisition number.
func (s *IssueService) NextReqNo(ctx context.Context, userID uuid.UUID) (string, error) {
	issues, err := s.inhouseRepo.FindAll(ctx, userID)
	if err != nil {
		return "", err
	}
	existing := make([]string, len(issues))
	for i := range issues {
		existing[i] = issues[i].ReqNo
	}
	return reconcile.RequestSeq.Next(existing), nil
}

// NextInHouseIssueNo suggests the next in-house issue number.
func (s *IssueService) NextInHouseIssueNo(ctx context.Context, userID uuid.UUID) (string, error) {
	issues, err := s.inhouseRepo.FindAll(ctx, userID)
	if err != nil {
		return "", err
	}
	existing := make([]string, len(issues))
	for i := range issues {
		existing[i] = issues[i].IssueNo
	}
	return reconcile.InHouseIssueSeq.Next(existing), nil
}

// CreateInHouseIssue creates an in-house issue. Empty requisition and
// issue numbers get the next ones in their series. Lines naming a
// batch are checked against that batch's pending quantity in the pool
// their transaction type selects.
func (s *IssueService) CreateInHouseIssue(ctx context.Context, userID uuid.UUID, req CreateInHouseIssueRequest) (*InHouseIssueResponse, error) {
	if err := s.validateInHouseLines(ctx, userID, req.Lines); err != nil {
		return nil, err
	}

	reqNo := req.ReqNo
	if reqNo == "" {
		generated, err := s.NextReqNo(ctx, userID)
		if err != nil {
			return nil, err
		}
		reqNo = generated
	} else {
		existing, err := s.inhouseRepo.FindByReqNo(ctx, userID, reqNo)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, shared.ErrDuplicateSequence
		}
	}

	issueNo := req.IssueNo
	if issueNo == "" {
		generated, err := s.NextInHouseIssueNo(ctx, userID)
		if err != nil {
			return nil, err
		}
		issueNo = generated
	} else {
		existing, err := s.inhouseRepo.FindByIssueNo(ctx, userID, issueNo)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, shared.ErrDuplicateSequence
		}
	}

	ih, err := issue.NewInHouseIssue(userID, reqNo, issueNo, req.PONo, req.Date, toInHouseIssueInputs(req.Lines))
	if err != nil {
		return nil, err
	}
	if err := s.inhouseRepo.Save(ctx, ih); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, ih)

	resp := ToInHouseIssueResponse(ih)
	return &resp, nil
}

// GetInHouseIssue retrieves an in-house issue by ID
func (s *IssueService) GetInHouseIssue(ctx context.Context, userID, id uuid.UUID) (*InHouseIssueResponse, error) {
	ih, err := s.inhouseRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToInHouseIssueResponse(ih)
	return &resp, nil
}

// ListInHouseIssues retrieves the user's in-house issues in creation order
func (s *IssueService) ListInHouseIssues(ctx context.Context, userID uuid.UUID) ([]InHouseIssueResponse, error) {
	issues, err := s.inhouseRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]InHouseIssueResponse, len(issues))
	for i := range issues {
		responses[i] = ToInHouseIssueResponse(&issues[i])
	}
	return responses, nil
}

// UpdateInHouseIssue replaces an issue's header fields and lines. The
// requisition and issue numbers never change.
func (s *IssueService) UpdateInHouseIssue(ctx context.Context, userID, id uuid.UUID, req UpdateInHouseIssueRequest) (*InHouseIssueResponse, error) {
	if err := s.validateInHouseLines(ctx, userID, req.Lines); err != nil {
		return nil, err
	}

	ih, err := s.inhouseRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	ih.PONo = req.PONo
	ih.Date = req.Date
	if err := ih.ReplaceLines(toInHouseIssueInputs(req.Lines)); err != nil {
		return nil, err
	}
	if err := s.inhouseRepo.Save(ctx, ih); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, ih)

	resp := ToInHouseIssueResponse(ih)
	return &resp, nil
}

// DeleteInHouseIssue removes an in-house issue
func (s *IssueService) DeleteInHouseIssue(ctx context.Context, userID, id uuid.UUID) error {
	ih, err := s.inhouseRepo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.inhouseRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, issue.NewInHouseIssueChangedEvent(ih, "issue.inhouse.deleted"))
	}
	return nil
}

func (s *IssueService) validateInHouseLines(ctx context.Context, userID uuid.UUID, lines []InHouseIssueLineRequest) error {
	for _, line := range lines {
		if err := s.validateItemCode(ctx, userID, line.ItemCode); err != nil {
			return err
		}
		if line.BatchNo == "" {
			continue
		}
		if err := s.checkBatchPending(ctx, userID, line.BatchNo, line.ItemCode, reconcile.TransactionType(line.TransactionType)); err != nil {
			return err
		}
	}
	return nil
}

func (s *IssueService) checkBatchPending(ctx context.Context, userID uuid.UUID, batchNo, itemCode string, txType reconcile.TransactionType) error {
	if s.snapshots == nil || !txType.Valid() {
		return nil
	}
	snap, err := s.snapshots.Snapshot(ctx, userID)
	if err != nil {
		return err
	}
	if reconcile.PendingQty(snap, batchNo, itemCode, txType).LessThanOrEqual(decimal.Zero) {
		return shared.ErrBatchFullyConsumed
	}
	return nil
}

func (s *IssueService) validateItemCode(ctx context.Context, userID uuid.UUID, itemCode string) error {
	if s.itemRepo == nil {
		return nil
	}
	_, err := s.itemRepo.FindByCode(ctx, userID, itemCode)
	if errors.Is(err, shared.ErrNotFound) {
		return shared.ErrUnknownItemCode
	}
	return err
}

func (s *IssueService) publishEvents(ctx context.Context, agg interface {
	GetDomainEvents() []shared.DomainEvent
	ClearDomainEvents()
}) {
	if s.publisher == nil {
		return
	}
	events := agg.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.publisher.Publish(ctx, events...)
	agg.ClearDomainEvents()
}
