// Package app owns the in-memory journal and the views derived from it. CLIs,
// the MCP server and tests all go through a Journal.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/store"
)

var (
	ErrEntryNotFound = errors.New("app: entry not found")
	// ErrInvalidDate is returned when a reschedule date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid format")
)

// Observer is told about the full collection after every successful mutation.
// Observers run while the journal is locked and must not call back into it.
type Observer func(ctx context.Context, entries []*entry.Entry) error

// Journal is the single owner of the ordered entry collection.
type Journal struct {
	mu        sync.Mutex
	entries   []*entry.Entry
	issued    map[string]struct{}
	observers []Observer

	now   func() time.Time
	newID func() string
	log   zerolog.Logger
}

type Option func(*Journal)

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) Option {
	return func(j *Journal) { j.now = now }
}

// WithIDs overrides id generation.
func WithIDs(gen func() string) Option {
	return func(j *Journal) { j.newID = gen }
}

func WithLogger(log zerolog.Logger) Option {
	return func(j *Journal) { j.log = log }
}

// New wraps an already loaded collection. Entries are normalized and copied.
func New(entries []*entry.Entry, opts ...Option) *Journal {
	j := &Journal{
		issued: make(map[string]struct{}, len(entries)),
		now:    time.Now,
		newID:  uuid.NewString,
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(j)
	}
	j.entries = make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		cp := e.Clone()
		cp.Normalize()
		j.entries = append(j.entries, cp)
		j.issued[cp.ID] = struct{}{}
	}
	return j
}

// Open loads the journal from p and subscribes p to every later mutation.
// A corrupt record is logged and treated as an empty journal.
func Open(ctx context.Context, p store.Persistence, opts ...Option) (*Journal, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	entries, err := p.Load(ctx)
	j := New(entries, opts...)
	if err != nil {
		if !errors.Is(err, store.ErrCorrupt) {
			return nil, err
		}
		j.log.Warn().Err(err).Msg("starting with an empty journal")
	}
	j.Subscribe(func(ctx context.Context, entries []*entry.Entry) error {
		return p.Save(ctx, entries)
	})
	return j, nil
}

// Subscribe registers an observer for write-through side effects.
func (j *Journal) Subscribe(o Observer) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.observers = append(j.observers, o)
}

// Today is the current local calendar day.
func (j *Journal) Today() entry.Date {
	return entry.Today(j.now())
}

// Entries returns copies of every entry in insertion order.
func (j *Journal) Entries() []*entry.Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.snapshot()
}

// Get returns a copy of the entry with the given id.
func (j *Journal) Get(id string) (*entry.Entry, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if i := j.indexOf(id); i >= 0 {
		return j.entries[i].Clone(), true
	}
	return nil, false
}

// Add validates the draft and appends it as a new entry.
func (j *Journal) Add(ctx context.Context, d entry.Draft) (*entry.Entry, error) {
	e := d.Entry()
	if err := entry.Validate(e, j.Today()); err != nil {
		return nil, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	e.ID = j.freshID()
	j.entries = append(j.entries, e)
	j.log.Debug().Str("id", e.ID).Str("type", string(e.Type)).Msg("entry added")
	return e.Clone(), j.notify(ctx)
}

// Update applies mutate to a copy of the entry, validates the result and
// replaces the stored entry in place. The id cannot be changed.
func (j *Journal) Update(ctx context.Context, id string, mutate func(*entry.Entry)) (*entry.Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	i := j.indexOf(id)
	if i < 0 {
		return nil, ErrEntryNotFound
	}
	next := j.entries[i].Clone()
	mutate(next)
	next.ID = id
	next.Normalize()
	if err := entry.Validate(next, j.Today()); err != nil {
		return nil, err
	}
	j.entries[i] = next
	j.log.Debug().Str("id", id).Msg("entry updated")
	return next.Clone(), j.notify(ctx)
}

// Remove deletes the entry if present. Unknown ids are ignored.
func (j *Journal) Remove(ctx context.Context, id string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	i := j.indexOf(id)
	if i < 0 {
		return nil
	}
	j.entries = append(j.entries[:i:i], j.entries[i+1:]...)
	j.log.Debug().Str("id", id).Msg("entry removed")
	return j.notify(ctx)
}

// ClearAll drops every entry.
func (j *Journal) ClearAll(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = []*entry.Entry{}
	j.log.Debug().Msg("journal cleared")
	return j.notify(ctx)
}

// ConvertToMemory turns an entry into a memory. An undated entry is dated
// today; an existing date is kept even when it is in the past. Mood is left
// unset.
func (j *Journal) ConvertToMemory(ctx context.Context, id string) (*entry.Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	i := j.indexOf(id)
	if i < 0 {
		return nil, ErrEntryNotFound
	}
	next := j.entries[i].Clone()
	next.Type = entry.Memory
	if !next.HasDate() {
		today := j.Today()
		next.Date = &today
	}
	next.Normalize()
	j.entries[i] = next
	j.log.Debug().Str("id", id).Msg("entry converted to memory")
	return next.Clone(), j.notify(ctx)
}

// Reschedule moves an entry to the day given as YYYY-MM-DD, subject to the
// usual validation.
func (j *Journal) Reschedule(ctx context.Context, id, day string) (*entry.Entry, error) {
	d, err := entry.ParseDate(day)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, day)
	}
	return j.Update(ctx, id, func(e *entry.Entry) {
		e.Date = &d
	})
}

func (j *Journal) indexOf(id string) int {
	for i, e := range j.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// freshID never hands out an id this journal has seen, removed ones included.
func (j *Journal) freshID() string {
	for {
		id := j.newID()
		if _, used := j.issued[id]; used || id == "" {
			continue
		}
		j.issued[id] = struct{}{}
		return id
	}
}

func (j *Journal) snapshot() []*entry.Entry {
	out := make([]*entry.Entry, len(j.entries))
	for i, e := range j.entries {
		out[i] = e.Clone()
	}
	return out
}

func (j *Journal) notify(ctx context.Context) error {
	if len(j.observers) == 0 {
		return nil
	}
	snap := j.snapshot()
	var errs []error
	for _, o := range j.observers {
		if err := o(ctx, snap); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		j.log.Error().Errs("errors", errs).Msg("observer failed")
		return fmt.Errorf("app: persist: %w", errors.Join(errs...))
	}
	return nil
}
