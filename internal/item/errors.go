package item

import "errors"

var (
	ErrItemNotFound         = errors.New("item not found")
	ErrItemNotFoundToDelete = errors.New("item not found to be deleted")
	ErrListNotFound         = errors.New("list not found")
	ErrIDMismatch           = errors.New("record id does not match the requested id")
)
