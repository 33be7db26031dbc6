package usecase

import (
	"context"

	"task-management/internal/item"
	repo "task-management/internal/item/repository"
	"task-management/internal/model"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailOutput, error) {
	it, err := uc.repo.DetailItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail DetailItem: %v", err)
		return item.DetailOutput{}, err
	}
	if it.ID == "" {
		return item.DetailOutput{}, item.ErrItemNotFound
	}
	return item.DetailOutput{Item: it}, nil
}

// Update replaces every mutable field of the item. Returns ErrItemNotFound when
// not found; nothing is written when validation fails.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateInput) (item.UpdateOutput, error) {
	existing, err := uc.repo.DetailItem(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update DetailItem: %v", err)
		return item.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return item.UpdateOutput{}, item.ErrItemNotFound
	}

	if err := uc.validate(input.Title, input.CreationDate, input.FinishDate); err != nil {
		return item.UpdateOutput{}, err
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:           input.ID,
		Title:        input.Title,
		Description:  input.Description,
		CreationDate: uc.dateOr(input.CreationDate, existing.CreationDate),
		FinishDate:   input.FinishDate,
		Priority:     model.PriorityOrDefault(input.Priority),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return item.UpdateOutput{}, item.ErrItemNotFound
	}
	return item.UpdateOutput{Item: updated}, nil
}

// DeleteByID removes the item. Deleting an absent item succeeds.
func (uc *implUseCase) DeleteByID(ctx context.Context, id string) error {
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteByID DeleteItem: %v", err)
		return err
	}
	return nil
}

// Delete removes the stored item fetched by input.ID.
// Returns ErrItemNotFoundToDelete when absent and ErrIDMismatch when the
// supplied record names another item.
func (uc *implUseCase) Delete(ctx context.Context, input item.DeleteInput) error {
	existing, err := uc.repo.DetailItem(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DetailItem: %v", err)
		return err
	}
	if existing.ID == "" {
		return item.ErrItemNotFoundToDelete
	}
	if input.Record.ID != "" && input.Record.ID != existing.ID {
		return item.ErrIDMismatch
	}

	if err := uc.repo.DeleteItem(ctx, existing.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
