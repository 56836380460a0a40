package shared

import (
	"context"

	"github.com/google/uuid"
)

// OwnedRepository is the base contract for user-scoped document
// collections. It mirrors the subscribe/add/update/delete surface the
// original store exposed per collection, minus subscribe (which lives
// on the snapshot hub in the persistence layer).
type OwnedRepository[T any] interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context, userID uuid.UUID) ([]T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	// ReplaceAll atomically swaps the user's entire collection. The
	// original store did delete-all-then-add-all as two separate
	// non-atomic phases; here both phases run inside one transaction.
	ReplaceAll(ctx context.Context, userID uuid.UUID, entities []T) error
}

// Filter represents query filter options
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "asc",
	}
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
