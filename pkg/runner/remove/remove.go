// Package remove provides the runners that delete entries.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/printers"
)

// Remove deletes one entry. Unknown ids are not an error.
type Remove struct {
	ID      string
	Out     io.Writer
	Journal *app.Journal
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not remove, no journal")
	}

	e, found := n.Journal.Get(n.ID)
	if err := n.Journal.Remove(ctx, n.ID); err != nil {
		return err
	}
	if !found {
		return nil
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	all := app.Visible(n.Journal.Entries(), e.Type, app.Filter{})
	pp.NewLine()
	pp.TitleWithCount(e.Type.Title(), len(all))
	pp.Collection(all...)
	return nil
}

// Clear drops every entry. Confirm must be set.
type Clear struct {
	Confirm bool
	Out     io.Writer
	Journal *app.Journal
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not clear, no journal")
	}
	if !n.Confirm {
		return errors.New("refusing to clear the journal without confirmation")
	}
	count := len(n.Journal.Entries())
	if err := n.Journal.ClearAll(ctx); err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "removed %d entries\n", count)
	return nil
}
