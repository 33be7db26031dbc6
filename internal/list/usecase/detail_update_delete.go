package usecase

import (
	"context"

	"task-management/internal/list"
	repo "task-management/internal/list/repository"
	"task-management/internal/model"
)

// Detail retrieves a single List with its items. Returns ErrListNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (list.DetailOutput, error) {
	l, err := uc.repo.DetailList(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail DetailList: %v", err)
		return list.DetailOutput{}, err
	}
	if l.ID == "" {
		return list.DetailOutput{}, list.ErrListNotFound
	}
	return list.DetailOutput{List: l}, nil
}

// Update replaces the list's fields and its whole items sequence.
// Returns ErrListNotFound when not found; nothing is written when validation fails.
func (uc *implUseCase) Update(ctx context.Context, input list.UpdateInput) (list.UpdateOutput, error) {
	existing, err := uc.repo.DetailList(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update DetailList: %v", err)
		return list.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return list.UpdateOutput{}, list.ErrListNotFound
	}

	if err := uc.validate(input.Title, input.CreationDate, input.Items); err != nil {
		return list.UpdateOutput{}, err
	}

	owned := make(map[string]model.Item, len(existing.Items))
	for _, it := range existing.Items {
		owned[it.ID] = it
	}
	items, err := uc.buildItems(input.Items, owned)
	if err != nil {
		return list.UpdateOutput{}, err
	}

	updated, err := uc.repo.UpdateList(ctx, repo.UpdateListOptions{
		ID:           input.ID,
		Title:        input.Title,
		Description:  input.Description,
		CreationDate: uc.dateOr(input.CreationDate, existing.CreationDate),
		Priority:     model.PriorityOrDefault(input.Priority),
		Items:        items,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateList: %v", err)
		return list.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return list.UpdateOutput{}, list.ErrListNotFound
	}
	return list.UpdateOutput{List: updated}, nil
}

// DeleteByID removes the list and its items. Deleting an absent list succeeds.
func (uc *implUseCase) DeleteByID(ctx context.Context, id string) error {
	if err := uc.repo.DeleteList(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteByID DeleteList: %v", err)
		return err
	}
	return nil
}

// Delete removes the stored list fetched by input.ID.
// Returns ErrListNotFoundToDelete when absent and ErrIDMismatch when the
// supplied record names another list.
func (uc *implUseCase) Delete(ctx context.Context, input list.DeleteInput) error {
	existing, err := uc.repo.DetailList(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DetailList: %v", err)
		return err
	}
	if existing.ID == "" {
		return list.ErrListNotFoundToDelete
	}
	if input.Record.ID != "" && input.Record.ID != existing.ID {
		return list.ErrIDMismatch
	}

	if err := uc.repo.DeleteList(ctx, existing.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteList: %v", err)
		return err
	}
	return nil
}
