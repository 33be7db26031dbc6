package list

import "errors"

var (
	ErrListNotFound         = errors.New("list not found")
	ErrListNotFoundToDelete = errors.New("list not found to be deleted")
	ErrItemNotInList        = errors.New("item does not belong to this list")
	ErrDuplicateItem        = errors.New("item appears more than once in the list")
	ErrIDMismatch           = errors.New("record id does not match the requested id")
)
