package repository

import (
	"time"

	"task-management/internal/model"
)

// CreateItemOptions holds parameters for inserting a standalone Item.
type CreateItemOptions struct {
	Title        string
	Description  string
	CreationDate time.Time
	FinishDate   *time.Time
	Priority     model.Priority
}

// ListItemsOptions holds filter and pagination parameters. Limit <= 0 means no limit.
type ListItemsOptions struct {
	Filter model.Filter
	Limit  int
	Offset int
}

// UpdateItemOptions holds the full replacement state of an Item.
type UpdateItemOptions struct {
	ID           string
	Title        string
	Description  string
	CreationDate time.Time
	FinishDate   *time.Time
	Priority     model.Priority
}
