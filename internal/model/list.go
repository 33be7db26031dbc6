package model

import "time"

// List is a named collection. Items is the ordered sequence of owned items and
// the only source of truth for membership.
type List struct {
	ID           string
	Title        string
	Description  string
	Items        []Item
	CreationDate time.Time
	Priority     Priority
}
