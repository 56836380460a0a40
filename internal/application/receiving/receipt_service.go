package receiving

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/catalog"
	"github.com/stockline/backend/internal/domain/issue"
	"github.com/stockline/backend/internal/domain/receipt"
	"github.com/stockline/backend/internal/domain/reconcile"
	"github.com/stockline/backend/internal/domain/shared"
)

// ReceiptService handles purchase and vendor stock inward reports.
// PSIR batch numbers come out of a per-year series; the service
// suggests the next one when a create request leaves it blank.
type ReceiptService struct {
	psirRepo     receipt.PSIRRepository
	vsirRepo     receipt.VSIRRepository
	itemRepo     catalog.ItemRepository
	vendorIssues issue.VendorIssueRepository
	publisher    shared.EventPublisher
	now          func() time.Time
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(
	psirRepo receipt.PSIRRepository,
	vsirRepo receipt.VSIRRepository,
	itemRepo catalog.ItemRepository,
	vendorIssues issue.VendorIssueRepository,
	publisher shared.EventPublisher,
) *ReceiptService {
	return &ReceiptService{
		psirRepo:     psirRepo,
		vsirRepo:     vsirRepo,
		itemRepo:     itemRepo,
		vendorIssues: vendorIssues,
		publisher:    publisher,
		now:          time.Now,
	}
}

// NextBatchNo suggests the next inward batch number for the current
// year, continuing the highest serial across all existing reports.
func (s *ReceiptService) NextBatchNo(ctx context.Context, userID uuid.UUID) (string, error) {
	reports, err := s.psirRepo.FindAll(ctx, userID)
	if err != nil {
		return "", err
	}
	existing := make([]string, len(reports))
	for i := range reports {
		existing[i] = reports[i].BatchNo
	}
	return reconcile.NextBatchNo(s.now().Year(), existing), nil
}

// CreatePSIR creates a purchase stock inward report. An empty batch
// number gets the next one in the year's series; an explicit one must
// be unused.
func (s *ReceiptService) CreatePSIR(ctx context.Context, userID uuid.UUID, req CreatePSIRRequest) (*PSIRResponse, error) {
	if err := s.validateLines(ctx, userID, req.Lines); err != nil {
		return nil, err
	}

	batchNo := req.BatchNo
	if batchNo == "" {
		generated, err := s.NextBatchNo(ctx, userID)
		if err != nil {
			return nil, err
		}
		batchNo = generated
	} else {
		existing, err := s.psirRepo.FindByBatchNo(ctx, userID, batchNo)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return nil, shared.ErrDuplicateSequence
		}
	}

	r, err := receipt.NewPSIR(userID, req.PONo, req.IndentNo, batchNo, req.Date, toPSIRLineInputs(req.Lines))
	if err != nil {
		return nil, err
	}
	if err := s.psirRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, r)

	resp := ToPSIRResponse(r)
	return &resp, nil
}

// GetPSIR retrieves a PSIR by ID
func (s *ReceiptService) GetPSIR(ctx context.Context, userID, id uuid.UUID) (*PSIRResponse, error) {
	r, err := s.psirRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToPSIRResponse(r)
	return &resp, nil
}

// ListPSIRs retrieves the user's PSIRs in creation order
func (s *ReceiptService) ListPSIRs(ctx context.Context, userID uuid.UUID) ([]PSIRResponse, error) {
	reports, err := s.psirRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]PSIRResponse, len(reports))
	for i := range reports {
		responses[i] = ToPSIRResponse(&reports[i])
	}
	return responses, nil
}

// ListPSIRsByPO retrieves PSIRs against a PO number
func (s *ReceiptService) ListPSIRsByPO(ctx context.Context, userID uuid.UUID, poNo string) ([]PSIRResponse, error) {
	reports, err := s.psirRepo.FindByPONo(ctx, userID, poNo)
	if err != nil {
		return nil, err
	}
	responses := make([]PSIRResponse, len(reports))
	for i := range reports {
		responses[i] = ToPSIRResponse(&reports[i])
	}
	return responses, nil
}

// UpdatePSIR replaces a report's header fields and lines. PO and batch
// numbers identify the receipt downstream and never change.
func (s *ReceiptService) UpdatePSIR(ctx context.Context, userID, id uuid.UUID, req UpdatePSIRRequest) (*PSIRResponse, error) {
	if err := s.validateLines(ctx, userID, req.Lines); err != nil {
		return nil, err
	}

	r, err := s.psirRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	r.IndentNo = req.IndentNo
	r.Date = req.Date
	if err := r.ReplaceLines(toPSIRLineInputs(req.Lines)); err != nil {
		return nil, err
	}
	if err := s.psirRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, r)

	resp := ToPSIRResponse(r)
	return &resp, nil
}

// DeletePSIR removes a PSIR
func (s *ReceiptService) DeletePSIR(ctx context.Context, userID, id uuid.UUID) error {
	r, err := s.psirRepo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.psirRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, receipt.NewPSIRChangedEvent(r, "receipt.psir.deleted"))
	}
	return nil
}

// CreateVSIR creates a vendor stock inward report. A report arriving
// with a delivery chit but no vendor batch number inherits the batch
// from the vendor issue raised against the same PO.
func (s *ReceiptService) CreateVSIR(ctx context.Context, userID uuid.UUID, req CreateVSIRRequest) (*VSIRResponse, error) {
	if err := s.validateItemCode(ctx, userID, req.ItemCode); err != nil {
		return nil, err
	}

	vendorBatchNo := strings.TrimSpace(req.VendorBatchNo)
	if vendorBatchNo == "" && strings.TrimSpace(req.DCNo) != "" && s.vendorIssues != nil {
		issues, err := s.vendorIssues.FindByPONo(ctx, userID, strings.TrimSpace(req.PONo))
		if err != nil {
			return nil, err
		}
		for i := range issues {
			if b := strings.TrimSpace(issues[i].VendorBatchNo); b != "" {
				vendorBatchNo = b
				break
			}
		}
	}

	v, err := receipt.NewVSIR(userID, req.PONo, vendorBatchNo, req.DCNo, req.Date, req.ItemCode, req.OKQty, req.ReworkQty, req.RejectQty)
	if err != nil {
		return nil, err
	}
	if err := s.vsirRepo.Save(ctx, v); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, v)

	resp := ToVSIRResponse(v)
	return &resp, nil
}

// GetVSIR retrieves a VSIR by ID
func (s *ReceiptService) GetVSIR(ctx context.Context, userID, id uuid.UUID) (*VSIRResponse, error) {
	v, err := s.vsirRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToVSIRResponse(v)
	return &resp, nil
}

// ListVSIRs retrieves the user's VSIRs in creation order
func (s *ReceiptService) ListVSIRs(ctx context.Context, userID uuid.UUID) ([]VSIRResponse, error) {
	reports, err := s.vsirRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]VSIRResponse, len(reports))
	for i := range reports {
		responses[i] = ToVSIRResponse(&reports[i])
	}
	return responses, nil
}

// ListVSIRsByPO retrieves VSIRs against a PO number
func (s *ReceiptService) ListVSIRsByPO(ctx context.Context, userID uuid.UUID, poNo string) ([]VSIRResponse, error) {
	reports, err := s.vsirRepo.FindByPONo(ctx, userID, poNo)
	if err != nil {
		return nil, err
	}
	responses := make([]VSIRResponse, len(reports))
	for i := range reports {
		responses[i] = ToVSIRResponse(&reports[i])
	}
	return responses, nil
}

// UpdateVSIR replaces the inspected split on a VSIR
func (s *ReceiptService) UpdateVSIR(ctx context.Context, userID, id uuid.UUID, req UpdateVSIRRequest) (*VSIRResponse, error) {
	v, err := s.vsirRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := v.UpdateQuantities(req.OKQty, req.ReworkQty, req.RejectQty); err != nil {
		return nil, err
	}
	if err := s.vsirRepo.Save(ctx, v); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, v)

	resp := ToVSIRResponse(v)
	return &resp, nil
}

// DeleteVSIR removes a VSIR
func (s *ReceiptService) DeleteVSIR(ctx context.Context, userID, id uuid.UUID) error {
	v, err := s.vsirRepo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.vsirRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, receipt.NewVSIRChangedEvent(v, "receipt.vsir.deleted"))
	}
	return nil
}

func (s *ReceiptService) validateLines(ctx context.Context, userID uuid.UUID, lines []PSIRLineRequest) error {
	for _, line := range lines {
		if err := s.validateItemCode(ctx, userID, line.ItemCode); err != nil {
			return err
		}
	}
	return nil
}

func (s *ReceiptService) validateItemCode(ctx context.Context, userID uuid.UUID, itemCode string) error {
	if s.itemRepo == nil {
		return nil
	}
	_, err := s.itemRepo.FindByCode(ctx, userID, itemCode)
	if errors.Is(err, shared.ErrNotFound) {
		return shared.ErrUnknownItemCode
	}
	return err
}

func (s *ReceiptService) publishEvents(ctx context.Context, agg interface {
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
