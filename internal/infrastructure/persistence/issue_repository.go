package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/issue"
	"github.com/stockline/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormVendorIssueRepository implements issue.VendorIssueRepository using GORM
type GormVendorIssueRepository struct {
	ownedRepo[issue.VendorIssue]
}

// NewGormVendorIssueRepository creates a new GormVendorIssueRepository
func NewGormVendorIssueRepository(db *gorm.DB) *GormVendorIssueRepository {
	return &GormVendorIssueRepository{
		ownedRepo: newOwnedRepo[issue.VendorIssue](db, "created_at asc", "Lines").
			withLineTable("vendor_issue_lines", "issue_id"),
	}
}

// FindByIssueNo finds a vendor issue by its document number
func (r *GormVendorIssueRepository) FindByIssueNo(ctx context.Context, userID uuid.UUID, issueNo string) (*issue.VendorIssue, error) {
	var vi issue.VendorIssue
	if err := r.query(ctx).
		Where("user_id = ? AND issue_no = ?", userID, issueNo).
		First(&vi).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vi, nil
}

// FindByPONo finds vendor issues raised against a PO number
func (r *GormVendorIssueRepository) FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) ([]issue.VendorIssue, error) {
	var issues []issue.VendorIssue
	if err := r.query(ctx).
		Where("user_id = ? AND po_no = ?", userID, poNo).
		Order("created_at asc").
		Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}

var _ issue.VendorIssueRepository = (*GormVendorIssueRepository)(nil)

// GormInHouseIssueRepository implements issue.InHouseIssueRepository using GORM
type GormInHouseIssueRepository struct {
	ownedRepo[issue.InHouseIssue]
}

// NewGormInHouseIssueRepository creates a new GormInHouseIssueRepository
func NewGormInHouseIssueRepository(db *gorm.DB) *GormInHouseIssueRepository {
	return &GormInHouseIssueRepository{
		ownedRepo: newOwnedRepo[issue.InHouseIssue](db, "created_at asc", "Lines").
			withLineTable("inhouse_issue_lines", "issue_id"),
	}
}

// FindByIssueNo finds an in-house issue by its document number
func (r *GormInHouseIssueRepository) FindByIssueNo(ctx context.Context, userID uuid.UUID, issueNo string) (*issue.InHouseIssue, error) {
	var ih issue.InHouseIssue
	if err := r.query(ctx).
		Where("user_id = ? AND issue_no = ?", userID, issueNo).
		First(&ih).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ih, nil
}

// FindByReqNo finds an in-house issue by its requisition number
func (r *GormInHouseIssueRepository) FindByReqNo(ctx context.Context, userID uuid.UUID, reqNo string) (*issue.InHouseIssue, error) {
	var ih issue.InHouseIssue
	if err := r.query(ctx).
		Where("user_id = ? AND req_no = ?", userID, reqNo).
		First(&ih).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ih, nil
}

var _ issue.InHouseIssueRepository = (*GormInHouseIssueRepository)(nil)
