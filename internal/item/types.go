package item

import (
	"time"

	"task-management/internal/model"
	"task-management/pkg/paginator"
)

// --- UseCase Inputs ---

// CreateInput creates a standalone item, or appends one to the list named by ListID.
type CreateInput struct {
	ListID       string
	Title        string
	Description  string
	CreationDate *time.Time
	FinishDate   *time.Time
	Priority     model.Priority
}

type ListInput struct {
	Paginate paginator.PaginateQuery
}

type ListByListInput struct {
	ListID   string
	Paginate paginator.PaginateQuery
}

type FilterInput struct {
	Filter   model.Filter
	Paginate paginator.PaginateQuery
}

// UpdateInput replaces every mutable field. Ownership is not changed.
type UpdateInput struct {
	ID           string
	Title        string
	Description  string
	CreationDate *time.Time
	FinishDate   *time.Time
	Priority     model.Priority
}

// DeleteInput carries the path id and the record supplied by the caller.
type DeleteInput struct {
	ID     string
	Record model.Item
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Item model.Item
}

type DetailOutput struct {
	Item model.Item
}

type UpdateOutput struct {
	Item model.Item
}

type ListOutput struct {
	Items      []model.Item
	Pagination paginator.Paginator
}
