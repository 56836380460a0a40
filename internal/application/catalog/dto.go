package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/catalog"
)

// CreateItemRequest contains data for creating an item master record
type CreateItemRequest struct {
	ItemName string `json:"item_name" binding:"required,max=200"`
	ItemCode string `json:"item_code" binding:"required,max=100"`
}

// UpdateItemRequest contains data for renaming an item
type UpdateItemRequest struct {
	ItemName string `json:"item_name" binding:"required,max=200"`
}

// ItemResponse is the client shape of an item master record
type ItemResponse struct {
	ID        uuid.UUID `json:"id"`
	ItemName  string    `json:"item_name"`
	ItemCode  string    `json:"item_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToItemResponse maps an item aggregate to its client shape
func ToItemResponse(item *catalog.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		ItemName:  item.ItemName,
		ItemCode:  item.ItemCode,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
