package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/indent"
	"github.com/stockline/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormIndentRepository implements indent.Repository using GORM.
// FindAll orders by position so the allocation engine walks indents in
// their fixed queue order.
type GormIndentRepository struct {
	ownedRepo[indent.Indent]
}

// NewGormIndentRepository creates a new GormIndentRepository
func NewGormIndentRepository(db *gorm.DB) *GormIndentRepository {
	return &GormIndentRepository{
		ownedRepo: newOwnedRepo[indent.Indent](db, "position asc", "Lines").
			withLineTable("indent_lines", "indent_id"),
	}
}

// FindByIndentNo finds an indent by its document number
func (r *GormIndentRepository) FindByIndentNo(ctx context.Context, userID uuid.UUID, indentNo string) (*indent.Indent, error) {
	var ind indent.Indent
	if err := r.query(ctx).
		Where("user_id = ? AND indent_no = ?", userID, indentNo).
		First(&ind).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ind, nil
}

// NextPosition returns one past the current maximum queue position
func (r *GormIndentRepository) NextPosition(ctx context.Context, userID uuid.UUID) (int, error) {
	var max *int
	if err := r.db.WithContext(ctx).
		Model(&indent.Indent{}).
		Where("user_id = ?", userID).
		Select("MAX(position)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

var _ indent.Repository = (*GormIndentRepository)(nil)
