package usecase

import (
	"context"

	"task-management/internal/item"
	repo "task-management/internal/item/repository"
	listRepo "task-management/internal/list/repository"
	"task-management/internal/model"
)

// Create validates the input and applies defaults, then either appends the
// item to the list named by input.ListID or persists it standalone.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateInput) (item.CreateOutput, error) {
	if err := uc.validate(input.Title, input.CreationDate, input.FinishDate); err != nil {
		return item.CreateOutput{}, err
	}

	creation := uc.dateOr(input.CreationDate, uc.now())
	priority := model.PriorityOrDefault(input.Priority)

	if input.ListID == "" {
		created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
			Title:        input.Title,
			Description:  input.Description,
			CreationDate: creation,
			FinishDate:   input.FinishDate,
			Priority:     priority,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
			return item.CreateOutput{}, err
		}
		return item.CreateOutput{Item: created}, nil
	}

	appended, err := uc.listRepo.AppendItem(ctx, input.ListID, listRepo.ItemOptions{
		Title:        input.Title,
		Description:  input.Description,
		CreationDate: creation,
		FinishDate:   input.FinishDate,
		Priority:     priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create AppendItem: %v", err)
		return item.CreateOutput{}, err
	}
	if appended.ID == "" {
		return item.CreateOutput{}, item.ErrListNotFound
	}

	return item.CreateOutput{Item: appended}, nil
}
