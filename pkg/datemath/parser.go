// Package datemath parses filter timestamps, absolute or relative to now.
package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrUnrecognized = errors.New("unrecognized date")

// absoluteLayouts are tried in order. Layouts without an offset are read in the parser's location.
var absoluteLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var durationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts value to an absolute UTC time. Relative forms resolve
// against now and land on midnight in the parser's timezone:
// "today", "tomorrow", "yesterday", "in N days|weeks|months", "next <weekday>".
func (p *Parser) Parse(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, value, p.location); err == nil {
			return t.UTC(), nil
		}
	}

	relative := strings.ToLower(value)
	switch relative {
	case "today":
		return p.startOfDay(now), nil
	case "tomorrow":
		return p.startOfDay(now.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(now.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, now)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, now)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, value)
}

func (p *Parser) parseInDuration(relative string, now time.Time) (time.Time, error) {
	matches := durationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration %q", ErrUnrecognized, relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid amount %q", ErrUnrecognized, matches[1])
	}

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(now.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(now.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(now.AddDate(0, amount, 0)), nil
	}
}

func (p *Parser) parseNextWeekday(relative string, now time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, dayName)
	}

	daysUntil := int(target - now.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(now.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight of t's day in the parser's timezone, as UTC.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location).UTC()
}
