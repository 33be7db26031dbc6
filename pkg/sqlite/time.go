package sqlite

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeLayout is the stored form of a time: UTC with nanoseconds, fixed width
// for years 0000-9999 so that text order is time order.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

const (
	MinYear = 0
	MaxYear = 9999
)

var ErrTimeOutOfRange = errors.New("time outside the storable years 0000-9999")

// InRange reports whether t can be stored without breaking text ordering.
func InRange(t time.Time) bool {
	y := t.UTC().Year()
	return y >= MinYear && y <= MaxYear
}

// FormatTime renders t in TimeLayout.
func FormatTime(t time.Time) (string, error) {
	if !InRange(t) {
		return "", fmt.Errorf("%w: %s", ErrTimeOutOfRange, t.Format(time.RFC3339Nano))
	}
	return t.UTC().Format(TimeLayout), nil
}

// Time is a time.Time column stored as TimeLayout text.
type Time struct {
	time.Time
}

func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// Value implements driver.Valuer.
func (t Time) Value() (driver.Value, error) {
	return FormatTime(t.Time)
}

// Scan implements sql.Scanner.
func (t *Time) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		t.Time = v.UTC()
		return nil
	default:
		return fmt.Errorf("sqlite.Time: cannot scan %T", src)
	}

	parsed, err := time.Parse(TimeLayout, s)
	if err != nil {
		return fmt.Errorf("sqlite.Time: %w", err)
	}
	t.Time = parsed
	return nil
}

// NullTime is an optional Time; NULL when Valid is false.
type NullTime struct {
	Time  Time
	Valid bool
}

func NewNullTime(t *time.Time) NullTime {
	if t == nil {
		return NullTime{}
	}
	return NullTime{Time: NewTime(*t), Valid: true}
}

// Ptr returns the time, or nil for NULL.
func (n NullTime) Ptr() *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time.Time
	return &t
}

// Value implements driver.Valuer.
func (n NullTime) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Time.Value()
}

// Scan implements sql.Scanner.
func (n *NullTime) Scan(src any) error {
	if src == nil {
		n.Time, n.Valid = Time{}, false
		return nil
	}
	if err := n.Time.Scan(src); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
