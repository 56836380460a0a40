package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/stock"
	"gorm.io/gorm"
)

// GormStockRepository implements stock.Repository using GORM. FindAll
// keeps creation order; closing-stock lookups take the first record
// per item code, so the order is load-bearing.
type GormStockRepository struct {
	ownedRepo[stock.Record]
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{
		ownedRepo: newOwnedRepo[stock.Record](db, "created_at asc"),
	}
}

// FindByItemCode finds stock records for an item code
func (r *GormStockRepository) FindByItemCode(ctx context.Context, userID uuid.UUID, itemCode string) ([]stock.Record, error) {
	var records []stock.Record
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(item_code) = ?", userID, strings.ToLower(strings.TrimSpace(itemCode))).
		Order("created_at asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

var _ stock.Repository = (*GormStockRepository)(nil)
