package repository

import (
	"time"

	"task-management/internal/model"
)

// ItemOptions is one element of a list's items sequence, in order.
// An empty ID means a new item.
type ItemOptions struct {
	ID           string
	Title        string
	Description  string
	CreationDate time.Time
	FinishDate   *time.Time
	Priority     model.Priority
}

// CreateListOptions holds parameters for inserting a List and its Items.
type CreateListOptions struct {
	Title        string
	Description  string
	CreationDate time.Time
	Priority     model.Priority
	Items        []ItemOptions
}

// ListListsOptions holds filter and pagination parameters. Limit <= 0 means no limit.
type ListListsOptions struct {
	Filter model.Filter
	Limit  int
	Offset int
}

// UpdateListOptions holds the full replacement state of a List.
type UpdateListOptions struct {
	ID           string
	Title        string
	Description  string
	CreationDate time.Time
	Priority     model.Priority
	Items        []ItemOptions
}
