package usecase

import (
	"context"

	"task-management/internal/list"
	repo "task-management/internal/list/repository"
	"task-management/internal/model"
	"task-management/pkg/paginator"
)

// List returns a page of all lists in storage order.
func (uc *implUseCase) List(ctx context.Context, input list.ListInput) (list.ListOutput, error) {
	return uc.page(ctx, "uc.List", model.Filter{}, input.Paginate)
}

// Filter returns a page of the lists matching every supplied constraint.
func (uc *implUseCase) Filter(ctx context.Context, input list.FilterInput) (list.ListOutput, error) {
	return uc.page(ctx, "uc.Filter", input.Filter, input.Paginate)
}

func (uc *implUseCase) page(ctx context.Context, op string, f model.Filter, pq paginator.PaginateQuery) (list.ListOutput, error) {
	pq.Adjust()

	lists, total, err := uc.repo.ListLists(ctx, repo.ListListsOptions{
		Filter: f,
		Limit:  pq.Size,
		Offset: pq.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s ListLists: %v", op, err)
		return list.ListOutput{}, err
	}

	return list.ListOutput{
		Lists:      lists,
		Pagination: paginator.NewPaginator(total, len(lists), pq),
	}, nil
}
