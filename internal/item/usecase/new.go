package usecase

import (
	"time"

	"task-management/internal/item/repository"
	listRepo "task-management/internal/list/repository"
	"task-management/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo     repository.Repository
	listRepo listRepo.Repository
	l        log.Logger
	now      func() time.Time
}

// New creates a new item UseCase implementation. Items are appended to a list
// through listRepo so the list's sequence stays the source of membership.
func New(repo repository.Repository, listRepo listRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		listRepo: listRepo,
		l:        l,
		now:      time.Now,
	}
}
