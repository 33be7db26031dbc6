package usecase

import (
	"time"

	"task-management/internal/model"
)

// validate checks the title and both optional dates.
func (uc *implUseCase) validate(title string, creation, finish *time.Time) error {
	if err := model.ValidateTitle(title); err != nil {
		return err
	}
	if err := model.ValidateOptionalDate("creation_date", creation); err != nil {
		return err
	}
	return model.ValidateOptionalDate("finish_date", finish)
}

// dateOr returns *t, or fallback when t is nil.
func (uc *implUseCase) dateOr(t *time.Time, fallback time.Time) time.Time {
	if t != nil {
		return *t
	}
	return fallback
}
