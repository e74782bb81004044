// Package convert provides the runner that turns a plan into a memory.
package convert

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/printers"
)

type Convert struct {
	ID      string
	Out     io.Writer
	Journal *app.Journal
}

func (n *Convert) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not convert, no journal")
	}

	e, err := n.Journal.ConvertToMemory(ctx, n.ID)
	if e == nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	all := app.Visible(n.Journal.Entries(), entry.Memory, app.Filter{})
	pp.NewLine()
	pp.TitleWithCount(entry.Memory.Title(), len(all))
	pp.Collection(all...)
	return err
}
