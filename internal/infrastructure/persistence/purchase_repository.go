package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/purchase"
	"github.com/stockline/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPurchaseEntryRepository implements purchase.EntryRepository using GORM
type GormPurchaseEntryRepository struct {
	ownedRepo[purchase.Entry]
}

// NewGormPurchaseEntryRepository creates a new GormPurchaseEntryRepository
func NewGormPurchaseEntryRepository(db *gorm.DB) *GormPurchaseEntryRepository {
	return &GormPurchaseEntryRepository{
		ownedRepo: newOwnedRepo[purchase.Entry](db, "created_at asc"),
	}
}

// FindByPONo finds purchase entries by PO number
func (r *GormPurchaseEntryRepository) FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) ([]purchase.Entry, error) {
	var entries []purchase.Entry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND po_no = ?", userID, poNo).
		Order("created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByIndentNo finds purchase entries raised against an indent
func (r *GormPurchaseEntryRepository) FindByIndentNo(ctx context.Context, userID uuid.UUID, indentNo string) ([]purchase.Entry, error) {
	var entries []purchase.Entry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND indent_no = ?", userID, indentNo).
		Order("created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

var _ purchase.EntryRepository = (*GormPurchaseEntryRepository)(nil)

// GormVendorDeptRepository implements purchase.VendorDeptRepository using GORM
type GormVendorDeptRepository struct {
	ownedRepo[purchase.VendorDeptOrder]
}

// NewGormVendorDeptRepository creates a new GormVendorDeptRepository
func NewGormVendorDeptRepository(db *gorm.DB) *GormVendorDeptRepository {
	return &GormVendorDeptRepository{
		ownedRepo: newOwnedRepo[purchase.VendorDeptOrder](db, "created_at asc", "Lines").
			withLineTable("vendor_dept_lines", "order_id"),
	}
}

// FindByPONo finds a vendor department order by PO number
func (r *GormVendorDeptRepository) FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) (*purchase.VendorDeptOrder, error) {
	var order purchase.VendorDeptOrder
	if err := r.query(ctx).
		Where("user_id = ? AND po_no = ?", userID, poNo).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

var _ purchase.VendorDeptRepository = (*GormVendorDeptRepository)(nil)
