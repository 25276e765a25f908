package repository

import (
	"context"

	"pantry/internal/model"
)

// InventoryRepository is one document collection keyed by item name.
// UpsertItem overwrites an existing document and DeleteItem ignores missing keys.
type InventoryRepository interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	UpsertItem(ctx context.Context, item model.Item) error
	DeleteItem(ctx context.Context, name string) error
}
