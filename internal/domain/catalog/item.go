package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stockline/backend/internal/domain/shared"
)

// Item is an item master record: the canonical identity every other
// collection joins against by item code.
type Item struct {
	shared.OwnedAggregateRoot
	ItemName string `gorm:"not null;index"`
	ItemCode string `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// NewItem creates an item master record. Both fields are trimmed; the
// code is the join key and must not collapse to empty.
func NewItem(userID uuid.UUID, itemName, itemCode string) (*Item, error) {
	itemName = strings.TrimSpace(itemName)
	itemCode = strings.TrimSpace(itemCode)
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Item name is required")
	}
	if itemCode == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_CODE", "Item code is required")
	}

	item := &Item{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		ItemName:           itemName,
		ItemCode:           itemCode,
	}
	item.AddDomainEvent(NewItemChangedEvent(item, "catalog.item.created"))
	return item, nil
}

// Rename updates the display name, keeping the code stable.
func (i *Item) Rename(itemName string) error {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return shared.NewDomainError("INVALID_ITEM_NAME", "Item name is required")
	}
	i.ItemName = itemName
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	i.AddDomainEvent(NewItemChangedEvent(i, "catalog.item.updated"))
	return nil
}

// ItemChangedEvent fires when an item master record is created or
// updated.
type ItemChangedEvent struct {
	shared.BaseDomainEvent
	ItemName string `json:"item_name"`
	ItemCode string `json:"item_code"`
}

// NewItemChangedEvent creates an ItemChangedEvent
func NewItemChangedEvent(item *Item, eventType string) *ItemChangedEvent {
	return &ItemChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "Item", item.ID, item.UserID),
		ItemName:        item.ItemName,
		ItemCode:        item.ItemCode,
	}
}
