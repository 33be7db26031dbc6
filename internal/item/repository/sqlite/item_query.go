package sqlite

import (
	"task-management/internal/model"
	"task-management/pkg/sqlite"
)

// buildFilter turns the optional filter fields into a WHERE predicate.
// Dates bound a closed window over creation_date, the same way lists are filtered.
func (r *implRepository) buildFilter(f model.Filter) *sqlite.Predicate {
	p := &sqlite.Predicate{}
	if f.Priority != nil {
		p.Equal("priority", string(*f.Priority))
	}
	if f.CreationDate != nil {
		p.AtLeast("creation_date", sqlite.NewTime(*f.CreationDate))
	}
	if f.FinishDate != nil {
		p.AtMost("creation_date", sqlite.NewTime(*f.FinishDate))
	}
	if f.Title != nil {
		p.Contains("title", *f.Title)
	}
	return p
}
