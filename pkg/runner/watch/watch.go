// Package watch reprints a listing whenever the stored journal changes.
package watch

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/runner/list"
	"tableflip.dev/travlog/pkg/store"
)

type Watch struct {
	Tab    entry.Type
	Filter app.Filter
	ShowID bool
	Out    io.Writer

	Persistence store.Persistence
	Log         zerolog.Logger
}

// Do prints the listing once, then again after every change until ctx is
// done.
func (n *Watch) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}

	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	if err := n.print(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == store.EventWatchError {
				n.Log.Warn().Str("key", ev.Key).Msg("watcher reported an error, reloading")
			}
			if err := n.print(ctx); err != nil {
				n.Log.Error().Err(err).Msg("reload failed")
			}
		}
	}
}

func (n *Watch) print(ctx context.Context) error {
	entries, err := n.Persistence.Load(ctx)
	if err != nil && !errors.Is(err, store.ErrCorrupt) {
		return err
	}
	if err != nil {
		n.Log.Warn().Err(err).Msg("showing an empty journal")
	}
	l := list.List{
		Tab:     n.Tab,
		Filter:  n.Filter,
		ShowID:  n.ShowID,
		Out:     n.Out,
		Journal: app.New(entries),
	}
	return l.Do(ctx)
}
