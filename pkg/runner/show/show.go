// Package show provides the detail view for a single entry.
package show

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/printers"
)

type Show struct {
	ID string
	// Photo is the 1-based carousel position; zero shows the first photo.
	// Out-of-range values wrap around.
	Photo  int
	ShowID bool
	JSON   bool
	Out    io.Writer

	Journal *app.Journal
	// Navigator defaults to a fresh one.
	Navigator *app.Navigator
}

func (n *Show) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not show, no journal")
	}
	if n.Navigator == nil {
		n.Navigator = &app.Navigator{}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}

	n.Navigator.GoToView(n.ID)
	e, ok := n.Navigator.Resolve(n.Journal)
	if !ok {
		if !n.JSON {
			pp.NotFound(n.ID)
		}
		return fmt.Errorf("%w: %s", app.ErrEntryNotFound, n.ID)
	}
	if n.Photo > 0 {
		n.Navigator.Carousel.Seek(n.Photo - 1)
	}

	if n.JSON {
		return pp.JSON(e)
	}
	pp.Detail(e, &n.Navigator.Carousel)
	return nil
}
