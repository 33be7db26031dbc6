package http

import (
	"time"

	"task-management/internal/item"
	"task-management/internal/model"
	"task-management/pkg/paginator"
)

// --- Request DTOs ---

// parseOptionalPriority maps "" to "" so the use case can apply its default.
func parseOptionalPriority(s string) (model.Priority, error) {
	if s == "" {
		return "", nil
	}
	return model.ParsePriority(s)
}

type createReq struct {
	ListID       string     `json:"-"` // populated from the listId query param
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CreationDate *time.Time `json:"creation_date"`
	FinishDate   *time.Time `json:"finish_date"`
	Priority     string     `json:"priority"`

	priority model.Priority
}

func (r *createReq) validate() error {
	var err error
	r.priority, err = parseOptionalPriority(r.Priority)
	return err
}

func (r createReq) toInput() item.CreateInput {
	return item.CreateInput{
		ListID:       r.ListID,
		Title:        r.Title,
		Description:  r.Description,
		CreationDate: r.CreationDate,
		FinishDate:   r.FinishDate,
		Priority:     r.priority,
	}
}

// ---

type updateReq struct {
	ID           string     `json:"-"` // populated from URI param
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CreationDate *time.Time `json:"creation_date"`
	FinishDate   *time.Time `json:"finish_date"`
	Priority     string     `json:"priority"`

	priority model.Priority
}

func (r *updateReq) validate() error {
	var err error
	r.priority, err = parseOptionalPriority(r.Priority)
	return err
}

func (r updateReq) toInput() item.UpdateInput {
	return item.UpdateInput{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		CreationDate: r.CreationDate,
		FinishDate:   r.FinishDate,
		Priority:     r.priority,
	}
}

// ---

type pageReq struct {
	Page int `form:"page"`
	Size int `form:"size"`
}

func (r pageReq) toPaginate() paginator.PaginateQuery {
	return paginator.PaginateQuery{Page: r.Page, Size: r.Size}
}

func (r pageReq) toInput() item.ListInput {
	return item.ListInput{Paginate: r.toPaginate()}
}

type listByListReq struct {
	pageReq
	ListID string `form:"-"` // populated from URI param
}

func (r listByListReq) toInput() item.ListByListInput {
	return item.ListByListInput{ListID: r.ListID, Paginate: r.toPaginate()}
}

type filterReq struct {
	pageReq
	Priority     string `form:"priority"`
	CreationDate string `form:"creationDate"`
	FinishDate   string `form:"finishDate"`

	filter model.Filter
}

func (r filterReq) toInput() item.FilterInput {
	return item.FilterInput{Filter: r.filter, Paginate: r.toPaginate()}
}

// ---

// recordReq is the caller's copy of an item, sent as the body of a qualified delete.
type recordReq struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type deleteReq struct {
	ID     string // populated from URI param
	Record recordReq
}

func (r deleteReq) toInput() item.DeleteInput {
	return item.DeleteInput{
		ID: r.ID,
		Record: model.Item{
			ID:          r.Record.ID,
			Title:       r.Record.Title,
			Description: r.Record.Description,
		},
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID           string     `json:"id"`
	ListID       string     `json:"list_id,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CreationDate time.Time  `json:"creation_date"`
	FinishDate   *time.Time `json:"finish_date"`
	Priority     string     `json:"priority"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:           it.ID,
		ListID:       it.ListID,
		Title:        it.Title,
		Description:  it.Description,
		CreationDate: it.CreationDate,
		FinishDate:   it.FinishDate,
		Priority:     string(it.Priority),
	}
}

type pageResp struct {
	Items      []itemResp          `json:"items"`
	Pagination paginator.Paginator `json:"pagination"`
}

func (h *handler) newPageResp(out item.ListOutput) pageResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return pageResp{Items: items, Pagination: out.Pagination}
}
