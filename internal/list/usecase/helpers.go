package usecase

import (
	"fmt"
	"time"

	"task-management/internal/list"
	repo "task-management/internal/list/repository"
	"task-management/internal/model"
)

// validate checks the list title and creation date, then every nested item.
func (uc *implUseCase) validate(title string, creation *time.Time, items []list.ItemInput) error {
	if err := model.ValidateTitle(title); err != nil {
		return err
	}
	if err := model.ValidateOptionalDate("creation_date", creation); err != nil {
		return err
	}
	for i, it := range items {
		if err := model.ValidateTitle(it.Title); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
		if err := model.ValidateOptionalDate("creation_date", it.CreationDate); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
		if err := model.ValidateOptionalDate("finish_date", it.FinishDate); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	return nil
}

// dateOr returns *t, or fallback when t is nil.
func (uc *implUseCase) dateOr(t *time.Time, fallback time.Time) time.Time {
	if t != nil {
		return *t
	}
	return fallback
}

// buildItems maps the requested sequence to repository options.
// owned holds the items the list currently has; an input ID must name one of
// them, at most once. Owned items keep their creation date when none is given.
func (uc *implUseCase) buildItems(items []list.ItemInput, owned map[string]model.Item) ([]repo.ItemOptions, error) {
	now := uc.now()
	seen := make(map[string]bool, len(items))
	opts := make([]repo.ItemOptions, 0, len(items))

	for _, it := range items {
		creation := now
		if it.ID != "" {
			existing, ok := owned[it.ID]
			if !ok {
				return nil, fmt.Errorf("%w: %s", list.ErrItemNotInList, it.ID)
			}
			if seen[it.ID] {
				return nil, fmt.Errorf("%w: %s", list.ErrDuplicateItem, it.ID)
			}
			seen[it.ID] = true
			creation = existing.CreationDate
		}

		opts = append(opts, repo.ItemOptions{
			ID:           it.ID,
			Title:        it.Title,
			Description:  it.Description,
			CreationDate: uc.dateOr(it.CreationDate, creation),
			FinishDate:   it.FinishDate,
			Priority:     model.PriorityOrDefault(it.Priority),
		})
	}
	return opts, nil
}
