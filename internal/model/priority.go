package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPriority = errors.New("priority must be one of LOW, NORMAL, HIGH")

// Priority ranks an Item or a List.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority accepts the labels case-insensitively.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return p, nil
}

// PriorityOrDefault returns p, or PriorityNormal when p is empty.
func PriorityOrDefault(p Priority) Priority {
	if p == "" {
		return PriorityNormal
	}
	return p
}
