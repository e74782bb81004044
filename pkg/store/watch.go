package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

type EventType int

const (
	// EventJournalChanged means the journal record was written, replaced or
	// removed.
	EventJournalChanged EventType = iota
	// EventWatchError means notifications may have been missed; reload.
	EventWatchError
)

// Event is emitted by Persistence.Watch.
type Event struct {
	Type EventType
	Key  string
}

// settle is how long the record must stay quiet before a change is reported.
// One save can produce several filesystem notifications.
const settle = 100 * time.Millisecond

// Watch reports changes to the journal record until ctx is done, then closes
// the channel. Events are coalesced and dropped when the reader falls behind.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", p.basePath, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: watcher: %w", err)
	}
	// diskv replaces the file on write, so watch the directory.
	if err := w.Add(p.basePath); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	out := make(chan Event, 16)
	go p.pump(ctx, w, out)
	return out, nil
}

func (p *persistence) pump(ctx context.Context, w *fsnotify.Watcher, out chan<- Event) {
	defer close(out)
	defer func() {
		if err := w.Close(); err != nil {
			p.log.Warn().Err(err).Msg("watcher close")
		}
	}()

	target := filepath.Clean(filepath.Join(p.basePath, p.key))
	pending := map[EventType]bool{}

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	arm := func(t EventType) {
		if len(pending) == 0 {
			timer.Reset(settle)
		}
		pending[t] = true
	}

	for {
		select {
		case <-ctx.Done():
			return

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			p.log.Debug().Err(err).Msg("watcher error")
			arm(EventWatchError)

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			arm(EventJournalChanged)

		case <-timer.C:
			for t := range pending {
				select {
				case out <- Event{Type: t, Key: p.key}:
				default:
				}
			}
			clear(pending)
		}
	}
}
