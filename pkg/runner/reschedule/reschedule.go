// Package reschedule provides the runner that moves an entry to a new day.
package reschedule

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/printers"
)

type Reschedule struct {
	ID string
	// Day is YYYY-MM-DD.
	Day     string
	Out     io.Writer
	Journal *app.Journal
}

func (n *Reschedule) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not reschedule, no journal")
	}

	e, err := n.Journal.Reschedule(ctx, n.ID, n.Day)
	if e == nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.NewLine()
	pp.Title(e.Type.Title())
	pp.Collection(e)
	return err
}
