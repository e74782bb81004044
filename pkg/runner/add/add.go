// Package add provides the runner that records a new memory or plan.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/photo"
	"tableflip.dev/travlog/pkg/printers"
)

type Add struct {
	Draft entry.Draft

	// PhotoFiles are read concurrently and attached in completion order.
	PhotoFiles []string
	// Captions[i] labels the photo read from PhotoFiles[i].
	Captions []string
	Loader   photo.Loader

	ShowID bool
	JSON   bool
	Out    io.Writer

	Journal *app.Journal

	// Added is set once the entry is accepted.
	Added *entry.Entry
}

func (n *Add) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not add, no journal")
	}

	if err := n.Loader.AppendCaptioned(ctx, &n.Draft.Photos, n.PhotoFiles, n.Captions); err != nil {
		return err
	}

	e, err := n.Journal.Add(ctx, n.Draft)
	if e == nil {
		return err
	}
	n.Added = e

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	if n.JSON {
		if jerr := pp.JSON(e); jerr != nil {
			return jerr
		}
		return err
	}

	all := app.Visible(n.Journal.Entries(), e.Type, app.Filter{})
	pp.NewLine()
	pp.TitleWithCount(e.Type.Title(), len(all))
	pp.Collection(all...)
	return err
}
