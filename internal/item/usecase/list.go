package usecase

import (
	"context"

	"task-management/internal/item"
	repo "task-management/internal/item/repository"
	"task-management/internal/model"
	"task-management/pkg/paginator"
)

// List returns a page of all items in storage order.
func (uc *implUseCase) List(ctx context.Context, input item.ListInput) (item.ListOutput, error) {
	return uc.page(ctx, "uc.List", model.Filter{}, input.Paginate)
}

// Filter returns a page of the items matching every supplied constraint.
func (uc *implUseCase) Filter(ctx context.Context, input item.FilterInput) (item.ListOutput, error) {
	return uc.page(ctx, "uc.Filter", input.Filter, input.Paginate)
}

// ListByList pages through one list's items in sequence order.
// The sequence is loaded whole and sliced in memory.
func (uc *implUseCase) ListByList(ctx context.Context, input item.ListByListInput) (item.ListOutput, error) {
	l, err := uc.listRepo.DetailList(ctx, input.ListID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByList DetailList: %v", err)
		return item.ListOutput{}, err
	}
	if l.ID == "" {
		return item.ListOutput{}, item.ErrListNotFound
	}

	pq := input.Paginate
	pq.Adjust()
	content, total := paginator.Slice(l.Items, pq)

	return item.ListOutput{
		Items:      content,
		Pagination: paginator.NewPaginator(total, len(content), pq),
	}, nil
}

func (uc *implUseCase) page(ctx context.Context, op string, f model.Filter, pq paginator.PaginateQuery) (item.ListOutput, error) {
	pq.Adjust()

	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Filter: f,
		Limit:  pq.Size,
		Offset: pq.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s ListItems: %v", op, err)
		return item.ListOutput{}, err
	}

	return item.ListOutput{
		Items:      items,
		Pagination: paginator.NewPaginator(total, len(items), pq),
	}, nil
}
