package list

import (
	"time"

	"task-management/internal/model"
	"task-management/pkg/paginator"
)

// --- UseCase Inputs ---

// ItemInput describes one element of a List's items sequence.
// ID is only meaningful on Update, where it names an item the list already owns.
type ItemInput struct {
	ID           string
	Title        string
	Description  string
	CreationDate *time.Time
	FinishDate   *time.Time
	Priority     model.Priority
}

type CreateInput struct {
	Title        string
	Description  string
	CreationDate *time.Time
	Priority     model.Priority
	Items        []ItemInput
}

type ListInput struct {
	Paginate paginator.PaginateQuery
}

type FilterInput struct {
	Filter   model.Filter
	Paginate paginator.PaginateQuery
}

// UpdateInput replaces every mutable field, including the whole items sequence.
type UpdateInput struct {
	ID           string
	Title        string
	Description  string
	CreationDate *time.Time
	Priority     model.Priority
	Items        []ItemInput
}

// DeleteInput carries the path id and the record supplied by the caller.
type DeleteInput struct {
	ID     string
	Record model.List
}

// --- UseCase Outputs ---

type CreateOutput struct {
	List model.List
}

type DetailOutput struct {
	List model.List
}

type UpdateOutput struct {
	List model.List
}

type ListOutput struct {
	Lists      []model.List
	Pagination paginator.Paginator
}
