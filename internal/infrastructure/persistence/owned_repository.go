package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ownedRepo is the shared GORM implementation behind every user-scoped
// collection repository. Concrete repositories embed it and add their
// collection-specific lookups. preloads lists child-line associations
// loaded on every read; order is the ORDER BY applied to FindAll.
type ownedRepo[T any] struct {
	db       *gorm.DB
	preloads []string
	order    string
	lines    []lineTable
}

// lineTable names a child-line table rewritten on Save. Line
// replacement regenerates row IDs, so an association upsert alone
// would leave the dropped rows behind and every quantity derived from
// the lines would double-count.
type lineTable struct {
	name string
	fk   string
}

func newOwnedRepo[T any](db *gorm.DB, order string, preloads ...string) ownedRepo[T] {
	return ownedRepo[T]{db: db, preloads: preloads, order: order}
}

// withLineTable registers a child-line table swept before every Save.
func (r ownedRepo[T]) withLineTable(name, fk string) ownedRepo[T] {
	r.lines = append(r.lines, lineTable{name: name, fk: fk})
	return r
}

func (r *ownedRepo[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

// FindByID finds an entity by ID within a user's collection
func (r *ownedRepo[T]) FindByID(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.query(ctx).Where("user_id = ? AND id = ?", userID, id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// FindAll returns a user's whole collection
func (r *ownedRepo[T]) FindAll(ctx context.Context, userID uuid.UUID) ([]T, error) {
	var entities []T
	q := r.query(ctx).Where("user_id = ?", userID)
	if r.order != "" {
		q = q.Order(r.order)
	}
	if err := q.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Save inserts or updates an entity together with its child lines.
// Aggregates with a registered line table get their line rows rewritten
// wholesale in one transaction: existing rows deleted, the current set
// inserted. Upserting alone cannot work here because replaced lines
// carry fresh IDs and the old rows would survive the save.
func (r *ownedRepo[T]) Save(ctx context.Context, entity *T) error {
	if len(r.lines) == 0 {
		return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(entity).Error
	}
	root, ok := any(entity).(shared.Entity)
	if !ok {
		return fmt.Errorf("entity %T has no ID accessor", entity)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, lt := range r.lines {
			if err := tx.Exec("DELETE FROM "+lt.name+" WHERE "+lt.fk+" = ?", root.GetID()).Error; err != nil {
				return err
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(entity).Error
	})
}

// Delete removes an entity from a user's collection
func (r *ownedRepo[T]) Delete(ctx context.Context, userID, id uuid.UUID) error {
	var entity T
	result := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ReplaceAll atomically swaps a user's entire collection: delete
// everything, insert the new set, one transaction.
func (r *ownedRepo[T]) ReplaceAll(ctx context.Context, userID uuid.UUID, entities []T) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var zero T
		if err := tx.Where("user_id = ?", userID).Delete(&zero).Error; err != nil {
			return err
		}
		if len(entities) == 0 {
			return nil
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Create(&entities).Error
	})
}
