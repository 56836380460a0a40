package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/catalog"
	"github.com/stockline/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormItemRepository implements catalog.ItemRepository using GORM
type GormItemRepository struct {
	ownedRepo[catalog.Item]
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{
		ownedRepo: newOwnedRepo[catalog.Item](db, "created_at asc"),
	}
}

// FindByCode finds an item by its code within a user's collection
func (r *GormItemRepository) FindByCode(ctx context.Context, userID uuid.UUID, itemCode string) (*catalog.Item, error) {
	var item catalog.Item
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(item_code) = ?", userID, strings.ToLower(strings.TrimSpace(itemCode))).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByName finds an item by its display name within a user's collection
func (r *GormItemRepository) FindByName(ctx context.Context, userID uuid.UUID, itemName string) (*catalog.Item, error) {
	var item catalog.Item
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(item_name) = ?", userID, strings.ToLower(strings.TrimSpace(itemName))).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

var _ catalog.ItemRepository = (*GormItemRepository)(nil)
