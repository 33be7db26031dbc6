package repository

import (
	"context"

	"task-management/internal/model"
)

// Repository is the composed interface for the list domain data store.
type Repository interface {
	ListRepository
}

// ListRepository persists Lists together with their owned Items.
// Every method is atomic.
type ListRepository interface {
	CreateList(ctx context.Context, opt CreateListOptions) (model.List, error)
	// DetailList returns a zero List (ID == "") when not found.
	DetailList(ctx context.Context, id string) (model.List, error)
	ListLists(ctx context.Context, opt ListListsOptions) ([]model.List, int, error)
	// UpdateList replaces the list's fields and items sequence: items without
	// ID are created, owned items missing from opt.Items are deleted.
	// Returns a zero List when the list does not exist.
	UpdateList(ctx context.Context, opt UpdateListOptions) (model.List, error)
	// AppendItem adds an item at the end of the list's sequence.
	// Returns a zero Item when the list does not exist.
	AppendItem(ctx context.Context, listID string, opt ItemOptions) (model.Item, error)
	// DeleteList deletes the list and all of its items. Absent ids are not an error.
	DeleteList(ctx context.Context, id string) error
}
