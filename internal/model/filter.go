package model

import "time"

// Filter is a conjunction of optional constraints. A nil field imposes none.
//
// CreationDate and FinishDate bound a closed window over the record's
// creation date: CreationDate is the lower bound, FinishDate the upper one.
// Either side may be omitted.
type Filter struct {
	Priority     *Priority
	CreationDate *time.Time
	FinishDate   *time.Time
	Title        *string // case-sensitive substring
}

// IsEmpty reports whether the filter constrains nothing.
func (f Filter) IsEmpty() bool {
	return f.Priority == nil && f.CreationDate == nil && f.FinishDate == nil && f.Title == nil
}
