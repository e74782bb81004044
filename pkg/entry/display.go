package entry

import (
	"fmt"

	"tableflip.dev/travlog/pkg/glyph"
)

// Title is the heading used for a listing of one tab.
func (t Type) Title() string {
	switch t {
	case Planned:
		return "Planned"
	default:
		return "Memories"
	}
}

// Row is the table form of an entry: date, category, mood, location, budget, tags.
func (e *Entry) Row() (string, string, string, string, string, string) {
	date := "undated"
	if e.HasDate() {
		date = e.Date.String()
	}
	return date,
		glyph.Category(string(e.Category)).String(),
		glyph.Mood(string(e.Mood)).String(),
		e.Location,
		FormatBudget(e.Budget),
		JoinTags(e.Tags)
}

func (e *Entry) String() string {
	date, cat, mood, loc, _, _ := e.Row()
	return fmt.Sprintf("%s %s %s  %s", cat, mood, date, loc)
}
