package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints one month grid. Days with entries are bold and today is
// underlined.
func (pp *PrettyPrint) Month(g app.MonthGrid, today entry.Date) {
	w := pp.out()
	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", g.Anchor.Month(), g.Anchor.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), m)
	_, _ = tf.Fprintln(w, "Su Mo Tu We Th Fr Sa")

	d := g.Lead

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(w, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i, day := range g.Days {
		printer := l1
		if day.Count > 0 {
			printer = l2
		}
		if day.Date.Equal(today) {
			printer = color.New(color.Underline)
			if day.Count > 0 {
				printer.Add(color.Bold)
			}
		}
		_, _ = printer.Fprintf(w, "%2d", i+1)
		_, _ = fmt.Fprint(w, " ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	if d != time.Sunday {
		_, _ = fmt.Fprint(w, "\n")
	}

	c := color.New(color.Faint)
	switch total := g.Total(); total {
	case 1:
		_, _ = c.Fprintln(w, "1 entry")
	default:
		_, _ = c.Fprintf(w, "%d entries\n", total)
	}
	pp.NewLine()
}
