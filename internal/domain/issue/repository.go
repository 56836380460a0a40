package issue

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/shared"
)

// VendorIssueRepository persists vendor issues.
type VendorIssueRepository interface {
	shared.OwnedRepository[VendorIssue]
	FindByIssueNo(ctx context.Context, userID uuid.UUID, issueNo string) (*VendorIssue, error)
	FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) ([]VendorIssue, error)
}

// InHouseIssueRepository persists in-house issues.
type InHouseIssueRepository interface {
	shared.OwnedRepository[InHouseIssue]
	FindByIssueNo(ctx context.Context, userID uuid.UUID, issueNo string) (*InHouseIssue, error)
	FindByReqNo(ctx context.Context, userID uuid.UUID, reqNo string) (*InHouseIssue, error)
}
