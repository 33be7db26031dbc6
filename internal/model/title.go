package model

import (
	"errors"
	"unicode/utf8"
)

const (
	MinTitleLength = 6
	MaxTitleLength = 20
)

var ErrInvalidTitle = errors.New("title must be between 6 and 20 characters")

// IsValidTitle reports whether title has between MinTitleLength and
// MaxTitleLength characters, both inclusive. Length is counted in runes.
func IsValidTitle(title string) bool {
	n := utf8.RuneCountInString(title)
	return n >= MinTitleLength && n <= MaxTitleLength
}

// ValidateTitle returns ErrInvalidTitle when IsValidTitle is false.
func ValidateTitle(title string) error {
	if !IsValidTitle(title) {
		return ErrInvalidTitle
	}
	return nil
}
