package model

import "time"

// Item is a task unit, standalone or owned by exactly one List.
type Item struct {
	ID           string
	ListID       string // empty for standalone items
	Title        string
	Description  string
	CreationDate time.Time
	FinishDate   *time.Time
	Priority     Priority
}
