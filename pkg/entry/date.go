package entry

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// LayoutISO is the wire and input format for calendar days.
const LayoutISO = "2006-01-02"

// Date is a calendar day in the local time zone. The wrapped time is always
// midnight of that day.
type Date struct {
	time.Time
}

// NewDate returns the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// DateOf drops the time of day from t, using the local calendar.
func DateOf(t time.Time) Date {
	l := t.Local()
	return NewDate(l.Year(), l.Month(), l.Day())
}

// Today is the local calendar day of now.
func Today(now time.Time) Date {
	return DateOf(now)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(v string) (Date, error) {
	t, err := time.ParseInLocation(LayoutISO, strings.TrimSpace(v), time.Local)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) ordinal() int {
	return d.Year()*10000 + int(d.Month())*100 + d.Day()
}

// Before reports whether d is a strictly earlier day than o.
func (d Date) Before(o Date) bool {
	return d.ordinal() < o.ordinal()
}

// After reports whether d is a strictly later day than o.
func (d Date) After(o Date) bool {
	return d.ordinal() > o.ordinal()
}

// Equal reports whether d and o are the same day.
func (d Date) Equal(o Date) bool {
	return d.ordinal() == o.ordinal()
}

func (d Date) SameDay(then time.Time) bool {
	return d.Equal(DateOf(then))
}

func (d Date) SameMonth(then time.Time) bool {
	l := then.Local()
	return d.Month() == l.Month() && d.Year() == l.Year()
}

// AddDays moves the date by n calendar days.
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year(), d.Month(), d.Day()+n)
}

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date {
	return NewDate(d.Year(), d.Month(), 1)
}

// AddMonths moves a first-of-month anchor by whole months.
func (d Date) AddMonths(n int) Date {
	return NewDate(d.Year(), d.Month()+time.Month(n), 1)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := parseLoose(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML writes the day as YYYY-MM-DD.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(LayoutISO)
}

// parseLoose accepts a plain day or a full RFC3339 timestamp, which older
// records carried.
func parseLoose(v string) (Date, error) {
	if d, err := ParseDate(v); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(v))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q", v)
	}
	return DateOf(t), nil
}
