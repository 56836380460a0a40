package purchase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/shared"
)

// EntryRepository persists purchase entries.
type EntryRepository interface {
	shared.OwnedRepository[Entry]
	FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) ([]Entry, error)
	FindByIndentNo(ctx context.Context, userID uuid.UUID, indentNo string) ([]Entry, error)
}

// VendorDeptRepository persists vendor department orders.
type VendorDeptRepository interface {
	shared.OwnedRepository[VendorDeptOrder]
	FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) (*VendorDeptOrder, error)
}
