package usecase

import (
	"context"

	"task-management/internal/list"
	repo "task-management/internal/list/repository"
	"task-management/internal/model"
)

// Create validates the list and its items, then persists them together.
func (uc *implUseCase) Create(ctx context.Context, input list.CreateInput) (list.CreateOutput, error) {
	if err := uc.validate(input.Title, input.CreationDate, input.Items); err != nil {
		return list.CreateOutput{}, err
	}

	items, err := uc.buildItems(input.Items, nil)
	if err != nil {
		return list.CreateOutput{}, err
	}

	created, err := uc.repo.CreateList(ctx, repo.CreateListOptions{
		Title:        input.Title,
		Description:  input.Description,
		CreationDate: uc.dateOr(input.CreationDate, uc.now()),
		Priority:     model.PriorityOrDefault(input.Priority),
		Items:        items,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateList: %v", err)
		return list.CreateOutput{}, err
	}

	return list.CreateOutput{List: created}, nil
}
