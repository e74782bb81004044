// Package list provides the runner behind the filtered listing.
package list

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/printers"
)

type List struct {
	// Tab is empty to list both tabs.
	Tab    entry.Type
	Filter app.Filter
	ShowID bool
	JSON   bool
	Out    io.Writer

	Journal *app.Journal
}

func (n *List) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not list, no journal")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	all := n.Journal.Entries()

	tabs := []entry.Type{entry.Memory, entry.Planned}
	if n.Tab != "" {
		tabs = []entry.Type{n.Tab}
	}

	if n.JSON {
		out := make([]*entry.Entry, 0, len(all))
		for _, t := range tabs {
			out = append(out, app.Visible(all, t, n.Filter)...)
		}
		return pp.JSON(out)
	}

	pp.NewLine()
	for _, t := range tabs {
		visible := app.Visible(all, t, n.Filter)
		pp.TitleWithCount(t.Title(), len(visible))
		pp.Collection(visible...)
	}
	return nil
}
