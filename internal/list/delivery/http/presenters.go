package http

import (
	"time"

	"task-management/internal/list"
	"task-management/internal/model"
	"task-management/pkg/paginator"
)

// --- Request DTOs ---

type itemReq struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CreationDate *time.Time `json:"creation_date"`
	FinishDate   *time.Time `json:"finish_date"`
	Priority     string     `json:"priority"`
}

func (r itemReq) toInput() (list.ItemInput, error) {
	p, err := parseOptionalPriority(r.Priority)
	if err != nil {
		return list.ItemInput{}, err
	}
	return list.ItemInput{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		CreationDate: r.CreationDate,
		FinishDate:   r.FinishDate,
		Priority:     p,
	}, nil
}

func toItemInputs(reqs []itemReq) ([]list.ItemInput, error) {
	inputs := make([]list.ItemInput, 0, len(reqs))
	for _, r := range reqs {
		in, err := r.toInput()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// parseOptionalPriority maps "" to "" so the use case can apply its default.
func parseOptionalPriority(s string) (model.Priority, error) {
	if s == "" {
		return "", nil
	}
	return model.ParsePriority(s)
}

// ---

type createReq struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CreationDate *time.Time `json:"creation_date"`
	Priority     string     `json:"priority"`
	Items        []itemReq  `json:"items"`

	priority model.Priority
	items    []list.ItemInput
}

func (r *createReq) validate() error {
	var err error
	if r.priority, err = parseOptionalPriority(r.Priority); err != nil {
		return err
	}
	r.items, err = toItemInputs(r.Items)
	return err
}

func (r createReq) toInput() list.CreateInput {
	return list.CreateInput{
		Title:        r.Title,
		Description:  r.Description,
		CreationDate: r.CreationDate,
		Priority:     r.priority,
		Items:        r.items,
	}
}

// ---

type updateReq struct {
	ID           string     `json:"-"` // populated from URI param
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CreationDate *time.Time `json:"creation_date"`
	Priority     string     `json:"priority"`
	Items        []itemReq  `json:"items"`

	priority model.Priority
	items    []list.ItemInput
}

func (r *updateReq) validate() error {
	var err error
	if r.priority, err = parseOptionalPriority(r.Priority); err != nil {
		return err
	}
	r.items, err = toItemInputs(r.Items)
	return err
}

func (r updateReq) toInput() list.UpdateInput {
	return list.UpdateInput{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		CreationDate: r.CreationDate,
		Priority:     r.priority,
		Items:        r.items,
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

func (r pageReq) toInput() list.ListInput {
	return list.ListInput{Paginate: r.toPaginate()}
}

// ---

type filterReq struct {
	pageReq
	Priority     string `form:"priority"`
	CreationDate string `form:"creationDate"`
	FinishDate   string `form:"finishDate"`

	filter model.Filter
}

func (r filterReq) toInput() list.FilterInput {
	return list.FilterInput{Filter: r.filter, Paginate: r.toPaginate()}
}

// ---

// recordReq is the caller's copy of a list, sent as the body of a qualified delete.
type recordReq struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type deleteReq struct {
	ID     string // populated from URI param
	Record recordReq
}

func (r deleteReq) toInput() list.DeleteInput {
	return list.DeleteInput{
		ID: r.ID,
		Record: model.List{
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

type listResp struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Items        []itemResp `json:"items"`
	CreationDate time.Time  `json:"creation_date"`
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

func newListResp(l model.List) listResp {
	items := make([]itemResp, len(l.Items))
	for i, it := range l.Items {
		items[i] = newItemResp(it)
	}
	return listResp{
		ID:           l.ID,
		Title:        l.Title,
		Description:  l.Description,
		Items:        items,
		CreationDate: l.CreationDate,
		Priority:     string(l.Priority),
	}
}

type pageResp struct {
	Lists      []listResp          `json:"lists"`
	Pagination paginator.Paginator `json:"pagination"`
}

func (h *handler) newPageResp(out list.ListOutput) pageResp {
	lists := make([]listResp, len(out.Lists))
	for i, l := range out.Lists {
		lists[i] = newListResp(l)
	}
	return pageResp{Lists: lists, Pagination: out.Pagination}
}
