package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert list")
	ErrFailedToGet    = errors.New("failed to get list")
	ErrFailedToList   = errors.New("failed to list lists")
	ErrFailedToUpdate = errors.New("failed to update list")
	ErrFailedToDelete = errors.New("failed to delete list")
)
