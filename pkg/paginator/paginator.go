// Package paginator models page requests and slices ordered collections into pages.
package paginator

const (
	DefaultPage = 0
	DefaultSize = 10
	MaxSize     = 100
)

// PaginateQuery is a zero-based page request.
type PaginateQuery struct {
	Page int `form:"page" json:"page"`
	Size int `form:"size" json:"size"`
}

// Adjust applies defaults and bounds in place.
func (q *PaginateQuery) Adjust() {
	if q.Page < 0 {
		q.Page = DefaultPage
	}
	if q.Size <= 0 {
		q.Size = DefaultSize
	}
	if q.Size > MaxSize {
		q.Size = MaxSize
	}
}

// Offset is the index of the first element of the page.
func (q PaginateQuery) Offset() int {
	return q.Page * q.Size
}

// Paginator describes a returned page.
type Paginator struct {
	Total      int `json:"total"`
	Count      int `json:"count"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	TotalPages int `json:"total_pages"`
}

// NewPaginator builds page metadata for count elements out of total.
func NewPaginator(total, count int, q PaginateQuery) Paginator {
	totalPages := 0
	if q.Size > 0 {
		totalPages = (total + q.Size - 1) / q.Size
	}
	return Paginator{
		Total:      total,
		Count:      count,
		Page:       q.Page,
		Size:       q.Size,
		TotalPages: totalPages,
	}
}

// Slice returns the page of items selected by q and the full length of items.
// A page starting past the end is empty. q must have Page >= 0 and Size > 0.
func Slice[T any](items []T, q PaginateQuery) ([]T, int) {
	total := len(items)
	start := q.Offset()
	if start >= total || start < 0 {
		return []T{}, total
	}
	end := min(start+q.Size, total)
	return items[start:end], total
}
