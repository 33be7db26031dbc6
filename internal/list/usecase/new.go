package usecase

import (
	"time"

	"task-management/internal/list/repository"
	"task-management/pkg/log"
)

// implUseCase is the private implementation of list.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

// New creates a new list UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}
