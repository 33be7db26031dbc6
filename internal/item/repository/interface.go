package repository

import (
	"context"

	"task-management/internal/model"
)

// Repository is the composed interface for the item domain data store.
type Repository interface {
	ItemRepository
}

// ItemRepository persists Items. Membership in a List is written only
// through the list repository; items created here are standalone.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	// DetailItem returns a zero Item (ID == "") when not found.
	DetailItem(ctx context.Context, id string) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, int, error)
	// UpdateItem replaces the item's fields and keeps its owner.
	// Returns a zero Item when the item does not exist.
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	// DeleteItem is a no-op for absent ids.
	DeleteItem(ctx context.Context, id string) error
}
