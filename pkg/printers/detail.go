package printers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/glyph"
	"tableflip.dev/travlog/pkg/photo"
)

const noCaption = "no caption"

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(12)
	mutedStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Detail prints the card for one entry. c is the photo position; a nil
// carousel shows the first photo.
func (pp *PrettyPrint) Detail(e *entry.Entry, c *app.Carousel) {
	rows := []string{
		headingStyle.Render(fmt.Sprintf("%s %s", glyph.Type(string(e.Type)), e.Location)),
		"",
		field("type", string(e.Type)),
		field("date", dateOrUndated(e)),
		field("category", fmt.Sprintf("%s %s", glyph.Category(string(e.Category)), e.Category)),
	}
	if e.Type == entry.Memory {
		mood := "none"
		if e.Mood != entry.NoMood {
			mood = fmt.Sprintf("%s %s", glyph.Mood(string(e.Mood)), e.Mood)
		}
		rows = append(rows, field("mood", mood))
	}
	rows = append(rows,
		field("budget", entry.FormatBudget(e.Budget)),
		field("tags", tagsOrNone(e.Tags)),
	)
	if pp.ShowID {
		rows = append(rows, field("id", e.ID))
	}
	if e.Description != "" {
		rows = append(rows, "", e.Description)
	}

	rows = append(append(rows, ""), photoBlock(e.Photos, c)...)

	_, _ = fmt.Fprintln(pp.out(), cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

// NotFound is the detail view for an id that does not resolve.
func (pp *PrettyPrint) NotFound(id string) {
	_, _ = fmt.Fprintln(pp.out(), cardStyle.Render(mutedStyle.Render(fmt.Sprintf("Entry not found: %s", id))))
}

func field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func dateOrUndated(e *entry.Entry) string {
	if !e.HasDate() {
		return "undated"
	}
	return e.Date.String()
}

func tagsOrNone(tags []string) string {
	if len(tags) == 0 {
		return "none"
	}
	return entry.JoinTags(tags)
}

func photoBlock(photos entry.Photos, c *app.Carousel) []string {
	if c == nil {
		c = &app.Carousel{}
		c.Reset(len(photos))
	}
	if len(photos) == 0 || c.Size() == 0 {
		return []string{mutedStyle.Render("No photos")}
	}
	p := photos[c.Index()]
	caption := p.Caption
	if strings.TrimSpace(caption) == "" {
		caption = noCaption
	}
	return []string{
		headingStyle.Render(c.Label()),
		field("source", photo.Describe(p.Src)),
		field("caption", caption),
	}
}
