package model

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinDateYear = 0
	MaxDateYear = 9999
)

var ErrInvalidDate = errors.New("date must fall within years 0000 to 9999 UTC")

// ValidateDate returns ErrInvalidDate when t, in UTC, is outside MinDateYear..MaxDateYear.
func ValidateDate(field string, t time.Time) error {
	if y := t.UTC().Year(); y < MinDateYear || y > MaxDateYear {
		return fmt.Errorf("%s: %w", field, ErrInvalidDate)
	}
	return nil
}

// ValidateOptionalDate is ValidateDate for an optional time; nil is valid.
func ValidateOptionalDate(field string, t *time.Time) error {
	if t == nil {
		return nil
	}
	return ValidateDate(field, *t)
}
