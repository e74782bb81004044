// Package timeutil parses the human-friendly day and month arguments the
// command line accepts.
package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/travlog/pkg/entry"
)

const (
	layoutMonth = "2006-01"
	layoutShort = "1/2"
)

var ErrUnknownDay = errors.New("timeutil: unrecognized day")

var (
	offsetPattern = regexp.MustCompile(`^\s*([+-]?\d+)\s*([a-z]+)`)
	unitDays      = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
	keywords = map[string]int{
		"today":     0,
		"now":       0,
		"tomorrow":  1,
		"yesterday": -1,
	}
)

// ParseDay resolves input relative to today. It accepts YYYY-MM-DD, M/D in
// the current year, the keywords today, tomorrow and yesterday, and signed
// offsets such as "+3d", "-1w" or "1w2d". Empty input yields nil.
func ParseDay(input string, today entry.Date) (*entry.Date, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return nil, nil
	}
	if n, ok := keywords[trimmed]; ok {
		d := today.AddDays(n)
		return &d, nil
	}
	if d, err := entry.ParseDate(trimmed); err == nil {
		return &d, nil
	}
	if t, err := time.ParseInLocation(layoutShort, trimmed, time.Local); err == nil {
		d := entry.NewDate(today.Year(), t.Month(), t.Day())
		return &d, nil
	}
	n, err := ParseOffset(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownDay, input)
	}
	d := today.AddDays(n)
	return &d, nil
}

// ParseOffset sums a day offset such as "+1w2d" or "-3d".
func ParseOffset(input string) (int, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, errors.New("timeutil: empty offset")
	}
	sign := 1
	switch remaining[0] {
	case '-':
		sign = -1
		remaining = remaining[1:]
	case '+':
		remaining = remaining[1:]
	}

	total := 0
	for len(remaining) > 0 {
		matches := offsetPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid offset segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid offset value %q: %w", matches[1], err)
		}
		base, ok := unitDays[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported offset unit %q", matches[2])
		}
		total += value * base
		remaining = remaining[len(matches[0]):]
	}
	return sign * total, nil
}

// ParseMonth reads YYYY-MM and returns the first day of that month. Empty
// input is the month holding today.
func ParseMonth(input string, today entry.Date) (entry.Date, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return today.FirstOfMonth(), nil
	}
	t, err := time.ParseInLocation(layoutMonth, trimmed, time.Local)
	if err != nil {
		return entry.Date{}, fmt.Errorf("invalid month %q, want YYYY-MM", input)
	}
	return entry.NewDate(t.Year(), t.Month(), 1), nil
}
