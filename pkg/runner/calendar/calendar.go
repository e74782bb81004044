// Package calendar provides the runner that prints per-day entry counts.
package calendar

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/printers"
)

type Calendar struct {
	Tab entry.Type
	// Month is any day inside the first month shown; zero means this month.
	Month entry.Date
	// Next and Prev shift the starting month before printing.
	Next int
	Prev int
	// Months is how many consecutive months to print, at least one.
	Months int
	// Day, when set, lists the tab entries on that day of the first month.
	Day  int
	JSON bool
	Out  io.Writer

	Journal *app.Journal
}

// MonthJSON is the machine-readable form of one month.
type MonthJSON struct {
	Month  string `json:"month"`
	Tab    string `json:"tab"`
	Counts []int  `json:"counts"`
	Total  int    `json:"total"`
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not show calendar, no journal")
	}
	if n.Tab == "" {
		n.Tab = entry.Memory
	}
	today := n.Journal.Today()
	anchor := n.Month
	if anchor.IsZero() {
		anchor = today
	}

	cal := app.NewCalendar(anchor)
	cal.Move(n.Next - n.Prev)
	first := *cal

	all := n.Journal.Entries()
	months := n.Months
	if months < 1 {
		months = 1
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		out := make([]MonthJSON, 0, months)
		for i := 0; i < months; i++ {
			g := cal.Grid(all, n.Tab)
			out = append(out, MonthJSON{
				Month:  g.Anchor.Format("2006-01"),
				Tab:    string(n.Tab),
				Counts: g.Counts(),
				Total:  g.Total(),
			})
			cal.Next()
		}
		return pp.JSON(out)
	}

	pp.NewLine()
	pp.Title(n.Tab.Title())
	for i := 0; i < months; i++ {
		pp.Month(cal.Grid(all, n.Tab), today)
		cal.Next()
	}

	if n.Day > 0 {
		var f app.Filter
		if !first.Select(&f, n.Day) {
			return errors.New("day is outside the month")
		}
		visible := app.Visible(all, n.Tab, f)
		pp.TitleWithCount(f.DateExact.String(), len(visible))
		pp.Collection(visible...)
	}
	return nil
}
