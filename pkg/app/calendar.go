package app

import (
	"time"

	"tableflip.dev/travlog/pkg/entry"
)

// DayCount is the number of tab entries dated on Date.
type DayCount struct {
	Date  entry.Date
	Count int
}

// MonthGrid is one month of day buckets.
type MonthGrid struct {
	Anchor entry.Date
	// Lead is the weekday of the first day, used to pad a week grid.
	Lead time.Weekday
	Days []DayCount
}

// Count returns the bucket for day-of-month day (1-based).
func (g MonthGrid) Count(day int) int {
	if day < 1 || day > len(g.Days) {
		return 0
	}
	return g.Days[day-1].Count
}

// Total is the number of entries dated inside the month.
func (g MonthGrid) Total() int {
	n := 0
	for _, d := range g.Days {
		n += d.Count
	}
	return n
}

// Counts returns the per-day counts as a plain slice.
func (g MonthGrid) Counts() []int {
	out := make([]int, len(g.Days))
	for i, d := range g.Days {
		out[i] = d.Count
	}
	return out
}

// DaysIn is the number of days in the month of then.
func DaysIn(then entry.Date) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Aggregate buckets the entries of tab by day for the month holding anchor.
func Aggregate(entries []*entry.Entry, tab entry.Type, anchor entry.Date) MonthGrid {
	first := anchor.FirstOfMonth()
	n := DaysIn(first)
	g := MonthGrid{
		Anchor: first,
		Lead:   first.Weekday(),
		Days:   make([]DayCount, n),
	}
	for i := range g.Days {
		g.Days[i].Date = first.AddDays(i)
	}
	for _, e := range entries {
		if e == nil || e.Type != tab || !e.HasDate() {
			continue
		}
		if !e.Date.SameMonth(first.Time) {
			continue
		}
		g.Days[e.Date.Day()-1].Count++
	}
	return g
}

// Calendar tracks the displayed month.
type Calendar struct {
	Anchor entry.Date
}

// NewCalendar shows the month containing today.
func NewCalendar(today entry.Date) *Calendar {
	return &Calendar{Anchor: today.FirstOfMonth()}
}

// Move shifts the displayed month by n months; negative n goes back.
func (c *Calendar) Move(n int) {
	c.Anchor = c.Anchor.FirstOfMonth().AddMonths(n)
}

func (c *Calendar) Next() { c.Move(1) }

func (c *Calendar) Prev() { c.Move(-1) }

// Grid aggregates entries for the displayed month.
func (c *Calendar) Grid(entries []*entry.Entry, tab entry.Type) MonthGrid {
	return Aggregate(entries, tab, c.Anchor)
}

// Select narrows f to a day of the displayed month.
func (c *Calendar) Select(f *Filter, day int) bool {
	if day < 1 || day > DaysIn(c.Anchor) {
		return false
	}
	f.SelectDay(c.Anchor.FirstOfMonth().AddDays(day - 1))
	return true
}
