package receipt

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/shared"
)

// PSIRRepository persists purchase stock inward reports.
type PSIRRepository interface {
	shared.OwnedRepository[PSIR]
	FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) ([]PSIR, error)
	FindByBatchNo(ctx context.Context, userID uuid.UUID, batchNo string) ([]PSIR, error)
}

// VSIRRepository persists vendor stock inward reports.
type VSIRRepository interface {
	shared.OwnedRepository[VSIR]
	FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) ([]VSIR, error)
}
