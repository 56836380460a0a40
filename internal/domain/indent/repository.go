package indent

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/shared"
)

// Repository persists indents. FindAll returns them ordered by
// Position ascending — the order the allocation engine depends on.
type Repository interface {
	shared.OwnedRepository[Indent]
	FindByIndentNo(ctx context.Context, userID uuid.UUID, indentNo string) (*Indent, error)
	// NextPosition returns the queue position a newly created indent
	// should take (one past the current maximum).
	NextPosition(ctx context.Context, userID uuid.UUID) (int, error)
}
