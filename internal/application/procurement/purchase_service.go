package procurement

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/catalog"
	"github.com/stockline/backend/internal/domain/purchase"
	"github.com/stockline/backend/internal/domain/shared"
)

// PurchaseService handles purchase entries and vendor department
// orders. Entries carry a cached stock figure the reconciliation hub
// keeps fresh; this service never touches it directly.
type PurchaseService struct {
	entryRepo      purchase.EntryRepository
	vendorDeptRepo purchase.VendorDeptRepository
	itemRepo       catalog.ItemRepository
	publisher      shared.EventPublisher
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(
	entryRepo purchase.EntryRepository,
	vendorDeptRepo purchase.VendorDeptRepository,
	itemRepo catalog.ItemRepository,
	publisher shared.EventPublisher,
) *PurchaseService {
	return &PurchaseService{
		entryRepo:      entryRepo,
		vendorDeptRepo: vendorDeptRepo,
		itemRepo:       itemRepo,
		publisher:      publisher,
	}
}

// CreateEntry creates a purchase entry.
func (s *PurchaseService) CreateEntry(ctx context.Context, userID uuid.UUID, req CreateEntryRequest) (*EntryResponse, error) {
	if err := s.validateItemCode(ctx, userID, req.ItemCode); err != nil {
		return nil, err
	}

	entry, err := purchase.NewEntry(
		userID,
		req.PONo,
		req.SupplierName,
		req.IndentNo,
		req.ItemCode,
		req.OriginalIndentQty,
		req.PurchaseQty,
		purchase.IndentStatus(req.IndentStatus),
	)
	if err != nil {
		return nil, err
	}
	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, entry)

	resp := ToEntryResponse(entry)
	return &resp, nil
}

// GetEntry retrieves a purchase entry by ID
func (s *PurchaseService) GetEntry(ctx context.Context, userID, id uuid.UUID) (*EntryResponse, error) {
	entry, err := s.entryRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToEntryResponse(entry)
	return &resp, nil
}

// ListEntries retrieves the user's purchase entries in creation order
func (s *PurchaseService) ListEntries(ctx context.Context, userID uuid.UUID) ([]EntryResponse, error) {
	entries, err := s.entryRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses, nil
}

// ListEntriesByPO retrieves entries sharing a PO number
func (s *PurchaseService) ListEntriesByPO(ctx context.Context, userID uuid.UUID, poNo string) ([]EntryResponse, error) {
	entries, err := s.entryRepo.FindByPONo(ctx, userID, poNo)
	if err != nil {
		return nil, err
	}
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses, nil
}

// UpdateEntry replaces an entry's editable fields. The PO number and
// item code identify the entry across receipts and issues, so they
// never change on update.
func (s *PurchaseService) UpdateEntry(ctx context.Context, userID, id uuid.UUID, req UpdateEntryRequest) (*EntryResponse, error) {
	entry, err := s.entryRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := entry.Update(req.SupplierName, req.IndentNo, req.OriginalIndentQty, req.PurchaseQty, purchase.IndentStatus(req.IndentStatus)); err != nil {
		return nil, err
	}
	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, entry)

	resp := ToEntryResponse(entry)
	return &resp, nil
}

// DeleteEntry removes a purchase entry
func (s *PurchaseService) DeleteEntry(ctx context.Context, userID, id uuid.UUID) error {
	entry, err := s.entryRepo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.entryRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, purchase.NewEntryChangedEvent(entry, "purchase.entry.deleted"))
	}
	return nil
}

// CreateVendorDept creates a vendor department order. One order per PO
// number; a second create against the same PO is rejected.
func (s *PurchaseService) CreateVendorDept(ctx context.Context, userID uuid.UUID, req CreateVendorDeptRequest) (*VendorDeptResponse, error) {
	for _, line := range req.Lines {
		if err := s.validateItemCode(ctx, userID, line.ItemCode); err != nil {
			return nil, err
		}
	}

	existing, err := s.vendorDeptRepo.FindByPONo(ctx, userID, req.PONo)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A vendor department order for this PO already exists")
	}

	order, err := purchase.NewVendorDeptOrder(userID, req.PONo, req.VendorName, toVendorDeptInputs(req.Lines))
	if err != nil {
		return nil, err
	}
	if err := s.vendorDeptRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, order)

	resp := ToVendorDeptResponse(order)
	return &resp, nil
}

// GetVendorDept retrieves a vendor department order by ID
func (s *PurchaseService) GetVendorDept(ctx context.Context, userID, id uuid.UUID) (*VendorDeptResponse, error) {
	order, err := s.vendorDeptRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToVendorDeptResponse(order)
	return &resp, nil
}

// GetVendorDeptByPO retrieves the vendor department order for a PO
func (s *PurchaseService) GetVendorDeptByPO(ctx context.Context, userID uuid.UUID, poNo string) (*VendorDeptResponse, error) {
	order, err := s.vendorDeptRepo.FindByPONo(ctx, userID, poNo)
	if err != nil {
		return nil, err
	}
	resp := ToVendorDeptResponse(order)
	return &resp, nil
}

// ListVendorDepts retrieves the user's vendor department orders
func (s *PurchaseService) ListVendorDepts(ctx context.Context, userID uuid.UUID) ([]VendorDeptResponse, error) {
	orders, err := s.vendorDeptRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]VendorDeptResponse, len(orders))
	for i := range orders {
		responses[i] = ToVendorDeptResponse(&orders[i])
	}
	return responses, nil
}

// UpdateVendorDept replaces an order's vendor name and lines
func (s *PurchaseService) UpdateVendorDept(ctx context.Context, userID, id uuid.UUID, req UpdateVendorDeptRequest) (*VendorDeptResponse, error) {
	for _, line := range req.Lines {
		if err := s.validateItemCode(ctx, userID, line.ItemCode); err != nil {
			return nil, err
		}
	}

	order, err := s.vendorDeptRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	order.VendorName = req.VendorName
	if err := order.ReplaceLines(toVendorDeptInputs(req.Lines)); err != nil {
		return nil, err
	}
	if err := s.vendorDeptRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, order)

	resp := ToVendorDeptResponse(order)
	return &resp, nil
}

// RecordInspection records a vendor OK quantity on the order's line for
// an item code.
func (s *PurchaseService) RecordInspection(ctx context.Context, userID, id uuid.UUID, req RecordInspectionRequest) (*VendorDeptResponse, error) {
	order, err := s.vendorDeptRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := order.RecordInspection(req.ItemCode, req.OKQty); err != nil {
		return nil, err
	}
	if err := s.vendorDeptRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, order)

	resp := ToVendorDeptResponse(order)
	return &resp, nil
}

// DeleteVendorDept removes a vendor department order
func (s *PurchaseService) DeleteVendorDept(ctx context.Context, userID, id uuid.UUID) error {
	order, err := s.vendorDeptRepo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.vendorDeptRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, purchase.NewVendorDeptChangedEvent(order, "purchase.vendordept.deleted"))
	}
	return nil
}

func (s *PurchaseService) validateItemCode(ctx context.Context, userID uuid.UUID, itemCode string) error {
	if s.itemRepo == nil {
		return nil
	}
	_, err := s.itemRepo.FindByCode(ctx, userID, itemCode)
	if errors.Is(err, shared.ErrNotFound) {
		return shared.ErrUnknownItemCode
	}
	return err
}

func (s *PurchaseService) publishEvents(ctx context.Context, agg interface {
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

func toVendorDeptInputs(lines []VendorDeptLineRequest) []purchase.VendorDeptLineInput {
	inputs := make([]purchase.VendorDeptLineInput, len(lines))
	for i, l := range lines {
		inputs[i] = purchase.VendorDeptLineInput{
			ItemCode: l.ItemCode,
			Qty:      l.Qty,
			OKQty:    l.OKQty,
		}
	}
	return inputs
}
