package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/catalog"
	"github.com/stockline/backend/internal/domain/shared"
)

// ItemService handles item master operations
type ItemService struct {
	itemRepo  catalog.ItemRepository
	publisher shared.EventPublisher
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo catalog.ItemRepository, publisher shared.EventPublisher) *ItemService {
	return &ItemService{itemRepo: itemRepo, publisher: publisher}
}

// Create creates an item master record
func (s *ItemService) Create(ctx context.Context, userID uuid.UUID, req CreateItemRequest) (*ItemResponse, error) {
	existing, err := s.itemRepo.FindByCode(ctx, userID, req.ItemCode)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An item with this code already exists")
	}

	item, err := catalog.NewItem(userID, req.ItemName, req.ItemCode)
	if err != nil {
		return nil, err
	}
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, item)

	resp := ToItemResponse(item)
	return &resp, nil
}

// GetByID retrieves an item by ID
func (s *ItemService) GetByID(ctx context.Context, userID, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToItemResponse(item)
	return &resp, nil
}

// GetByCode retrieves an item by its code
func (s *ItemService) GetByCode(ctx context.Context, userID uuid.UUID, itemCode string) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByCode(ctx, userID, itemCode)
	if err != nil {
		return nil, err
	}
	resp := ToItemResponse(item)
	return &resp, nil
}

// List retrieves the user's whole item master
func (s *ItemService) List(ctx context.Context, userID uuid.UUID) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses, nil
}

// Update renames an item, keeping the code stable
func (s *ItemService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := item.Rename(req.ItemName); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, item)

	resp := ToItemResponse(item)
	return &resp, nil
}

// Delete removes an item master record
func (s *ItemService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	item, err := s.itemRepo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.itemRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, catalog.NewItemChangedEvent(item, "catalog.item.deleted"))
	}
	return nil
}

// ReplaceAll swaps the user's entire item master in one transaction,
// the bulk-import path.
func (s *ItemService) ReplaceAll(ctx context.Context, userID uuid.UUID, reqs []CreateItemRequest) ([]ItemResponse, error) {
	items := make([]catalog.Item, 0, len(reqs))
	seen := make(map[string]bool, len(reqs))
	for _, req := range reqs {
		item, err := catalog.NewItem(userID, req.ItemName, req.ItemCode)
		if err != nil {
			return nil, err
		}
		if seen[item.ItemCode] {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Duplicate item code in import: "+item.ItemCode)
		}
		seen[item.ItemCode] = true
		item.ClearDomainEvents()
		items = append(items, *item)
	}

	if err := s.itemRepo.ReplaceAll(ctx, userID, items); err != nil {
		return nil, err
	}
	if s.publisher != nil && len(items) > 0 {
		_ = s.publisher.Publish(ctx, catalog.NewItemChangedEvent(&items[0], "catalog.item.imported"))
	}

	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses, nil
}

func (s *ItemService) publishEvents(ctx context.Context, item *catalog.Item) {
	if s.publisher == nil {
		return
	}
	events := item.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.publisher.Publish(ctx, events...)
	item.ClearDomainEvents()
}
