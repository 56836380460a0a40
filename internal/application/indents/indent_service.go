package indents

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/catalog"
	"github.com/stockline/backend/internal/domain/indent"
	"github.com/stockline/backend/internal/domain/reconcile"
	"github.com/stockline/backend/internal/domain/shared"
)

// IndentService handles material-request operations. Indents queue for
// stock allocation in creation order; the service pins each new indent
// to the next queue position.
type IndentService struct {
	indentRepo indent.Repository
	itemRepo   catalog.ItemRepository
	publisher  shared.EventPublisher
}

// NewIndentService creates a new IndentService
func NewIndentService(
	indentRepo indent.Repository,
	itemRepo catalog.ItemRepository,
	publisher shared.EventPublisher,
) *IndentService {
	return &IndentService{
		indentRepo: indentRepo,
		itemRepo:   itemRepo,
		publisher:  publisher,
	}
}

// NextIndentNo suggests the next indent number in the family.
func (s *IndentService) NextIndentNo(ctx context.Context, userID uuid.UUID) (string, error) {
	indents, err := s.indentRepo.FindAll(ctx, userID)
	if err != nil {
		return "", err
	}
	existing := make([]string, len(indents))
	for i := range indents {
		existing[i] = indents[i].IndentNo
	}
	return reconcile.IndentSeq.Next(existing), nil
}

// NextOANo suggests the next "Stock NN" order-acknowledgement number
// for a requester. Empty when the requester has no Stock series yet
// and startSeries is false.
func (s *IndentService) NextOANo(ctx context.Context, userID uuid.UUID, indentBy string, startSeries bool) (string, error) {
	indents, err := s.indentRepo.FindAll(ctx, userID)
	if err != nil {
		return "", err
	}
	snap := make([]reconcile.Indent, len(indents))
	for i := range indents {
		snap[i] = indents[i].Reconcile()
	}
	return reconcile.NextOANo(indentBy, snap, startSeries), nil
}

// Create creates an indent at the back of the allocation queue. An
// empty indent number gets the next one in the family.
func (s *IndentService) Create(ctx context.Context, userID uuid.UUID, req CreateIndentRequest) (*IndentResponse, error) {
	if err := s.validateItemCodes(ctx, userID, req.Lines); err != nil {
		return nil, err
	}

	indentNo := req.IndentNo
	if indentNo == "" {
		generated, err := s.NextIndentNo(ctx, userID)
		if err != nil {
			return nil, err
		}
		indentNo = generated
	} else {
		existing, err := s.indentRepo.FindByIndentNo(ctx, userID, indentNo)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, shared.ErrDuplicateSequence
		}
	}

	oaNo := req.OANo
	if oaNo == "" && req.IndentBy != "" {
		generated, err := s.NextOANo(ctx, userID, req.IndentBy, req.StartOASeries)
		if err != nil {
			return nil, err
		}
		oaNo = generated
	}

	position, err := s.indentRepo.NextPosition(ctx, userID)
	if err != nil {
		return nil, err
	}

	ind, err := indent.NewIndent(userID, indentNo, req.Date, req.IndentBy, oaNo, position, toLineInputs(req.Lines))
	if err != nil {
		return nil, err
	}
	if err := s.indentRepo.Save(ctx, ind); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, ind)

	resp := ToIndentResponse(ind)
	return &resp, nil
}

// GetByID retrieves an indent by ID
func (s *IndentService) GetByID(ctx context.Context, userID, id uuid.UUID) (*IndentResponse, error) {
	ind, err := s.indentRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToIndentResponse(ind)
	return &resp, nil
}

// List retrieves the user's indents in allocation queue order
func (s *IndentService) List(ctx context.Context, userID uuid.UUID) ([]IndentResponse, error) {
	indents, err := s.indentRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]IndentResponse, len(indents))
	for i := range indents {
		responses[i] = ToIndentResponse(&indents[i])
	}
	return responses, nil
}

// Update replaces an indent's header and lines. The document number
// and queue position never change on update.
func (s *IndentService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateIndentRequest) (*IndentResponse, error) {
	if err := s.validateItemCodes(ctx, userID, req.Lines); err != nil {
		return nil, err
	}

	ind, err := s.indentRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	ind.Date = req.Date
	ind.IndentBy = req.IndentBy
	ind.OANo = req.OANo
	if err := ind.ReplaceLines(toLineInputs(req.Lines)); err != nil {
		return nil, err
	}
	if err := s.indentRepo.Save(ctx, ind); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, ind)

	resp := ToIndentResponse(ind)
	return &resp, nil
}

// Delete removes an indent. Later indents keep their positions; the
// queue tolerates gaps.
func (s *IndentService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	ind, err := s.indentRepo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.indentRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, indent.NewIndentChangedEvent(ind, "indent.deleted"))
	}
	return nil
}

// validateItemCodes checks every line against the item master.
func (s *IndentService) validateItemCodes(ctx context.Context, userID uuid.UUID, lines []IndentLineRequest) error {
	if s.itemRepo == nil {
		return nil
	}
	for _, line := range lines {
		_, err := s.itemRepo.FindByCode(ctx, userID, line.ItemCode)
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrUnknownItemCode
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *IndentService) publishEvents(ctx context.Context, ind *indent.Indent) {
	if s.publisher == nil {
		return
	}
	events := ind.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.publisher.Publish(ctx, events...)
	ind.ClearDomainEvents()
}
