package app

import (
	"strings"

	"tableflip.dev/travlog/pkg/entry"
)

// All disables the category or mood predicate.
const All = "all"

// Filter narrows the visible entries. The zero value shows everything on a tab.
type Filter struct {
	Q         string
	Category  string
	Mood      string
	Tag       string
	BudgetMin *float64
	BudgetMax *float64
	DateExact *entry.Date
}

// SelectDay restricts the filter to one calendar day.
func (f *Filter) SelectDay(d entry.Date) {
	f.DateExact = &d
}

// ClearDay removes the day restriction.
func (f *Filter) ClearDay() {
	f.DateExact = nil
}

func active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, All)
}

// Visible returns the entries of tab that pass every predicate in f, keeping
// their order in entries.
func Visible(entries []*entry.Entry, tab entry.Type, f Filter) []*entry.Entry {
	q := strings.ToLower(strings.TrimSpace(f.Q))
	tag := strings.ToLower(strings.TrimSpace(f.Tag))

	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil || e.Type != tab {
			continue
		}
		if active(f.Category) && !strings.EqualFold(string(e.Category), strings.TrimSpace(f.Category)) {
			continue
		}
		if tab == entry.Memory && active(f.Mood) && !strings.EqualFold(string(e.Mood), strings.TrimSpace(f.Mood)) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(e.Location+" "+e.Description), q) {
			continue
		}
		if tag != "" && !hasTag(e.Tags, tag) {
			continue
		}
		if f.DateExact != nil && (!e.HasDate() || !e.Date.Equal(*f.DateExact)) {
			continue
		}
		if !inBudget(e.Budget, f.BudgetMin, f.BudgetMax) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func hasTag(tags []string, needle string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

// inBudget excludes entries without a budget as soon as either bound is set.
func inBudget(b, lo, hi *float64) bool {
	if lo == nil && hi == nil {
		return true
	}
	if b == nil {
		return false
	}
	if lo != nil && *b < *lo {
		return false
	}
	if hi != nil && *b > *hi {
		return false
	}
	return true
}
