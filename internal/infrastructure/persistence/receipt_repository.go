package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/receipt"
	"gorm.io/gorm"
)

// GormPSIRRepository implements receipt.PSIRRepository using GORM
type GormPSIRRepository struct {
	ownedRepo[receipt.PSIR]
}

// NewGormPSIRRepository creates a new GormPSIRRepository
func NewGormPSIRRepository(db *gorm.DB) *GormPSIRRepository {
	return &GormPSIRRepository{
		ownedRepo: newOwnedRepo[receipt.PSIR](db, "created_at asc", "Lines").
			withLineTable("psir_lines", "report_id"),
	}
}

// FindByPONo finds PSIRs recorded against a PO number
func (r *GormPSIRRepository) FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) ([]receipt.PSIR, error) {
	var reports []receipt.PSIR
	if err := r.query(ctx).
		Where("user_id = ? AND po_no = ?", userID, poNo).
		Order("created_at asc").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// FindByBatchNo finds PSIRs carrying a batch number
func (r *GormPSIRRepository) FindByBatchNo(ctx context.Context, userID uuid.UUID, batchNo string) ([]receipt.PSIR, error) {
	var reports []receipt.PSIR
	if err := r.query(ctx).
		Where("user_id = ? AND batch_no = ?", userID, batchNo).
		Order("created_at asc").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

var _ receipt.PSIRRepository = (*GormPSIRRepository)(nil)

// GormVSIRRepository implements receipt.VSIRRepository using GORM
type GormVSIRRepository struct {
	ownedRepo[receipt.VSIR]
}

// NewGormVSIRRepository creates a new GormVSIRRepository
func NewGormVSIRRepository(db *gorm.DB) *GormVSIRRepository {
	return &GormVSIRRepository{
		ownedRepo: newOwnedRepo[receipt.VSIR](db, "created_at asc"),
	}
}

// FindByPONo finds VSIRs recorded against a PO number
func (r *GormVSIRRepository) FindByPONo(ctx context.Context, userID uuid.UUID, poNo string) ([]receipt.VSIR, error) {
	var reports []receipt.VSIR
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND po_no = ?", userID, poNo).
		Order("created_at asc").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

var _ receipt.VSIRRepository = (*GormVSIRRepository)(nil)
