package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/shared"
)

// ItemRepository persists item master records.
type ItemRepository interface {
	shared.OwnedRepository[Item]
	FindByCode(ctx context.Context, userID uuid.UUID, itemCode string) (*Item, error)
	FindByName(ctx context.Context, userID uuid.UUID, itemName string) (*Item, error)
}
