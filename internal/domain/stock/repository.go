package stock

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/shared"
)

// Repository persists stock records. FindAll returns them in creation
// order; closing-stock lookups take the first record per item code.
type Repository interface {
	shared.OwnedRepository[Record]
	FindByItemCode(ctx context.Context, userID uuid.UUID, itemCode string) ([]Record, error)
}
