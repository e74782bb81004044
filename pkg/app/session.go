package app

import (
	"context"
	"errors"

	"tableflip.dev/travlog/pkg/entry"
)

var ErrSessionClosed = errors.New("app: no entry open for editing")

// Session is a detached working copy of one entry. Nothing reaches the
// journal until Save.
type Session struct {
	// Entry is the working copy; callers edit its fields directly.
	Entry *entry.Entry
	// TagsText is the editable form of Entry.Tags and wins over it on save.
	TagsText string
}

// Open starts editing a copy of e, replacing any previous session.
func (s *Session) Open(e *entry.Entry) {
	s.Entry = e.Clone()
	s.TagsText = entry.JoinTags(e.Tags)
}

// OpenID opens the entry with the given id.
func (s *Session) OpenID(j *Journal, id string) error {
	e, ok := j.Get(id)
	if !ok {
		return ErrEntryNotFound
	}
	s.Open(e)
	return nil
}

func (s *Session) IsOpen() bool {
	return s.Entry != nil
}

// Photos is the session's photo list.
func (s *Session) Photos() *entry.Photos {
	if s.Entry == nil {
		return nil
	}
	return &s.Entry.Photos
}

// Save validates the working copy and replaces the stored entry with it.
// A rejected save leaves the session open so the input can be corrected.
func (s *Session) Save(ctx context.Context, j *Journal) (*entry.Entry, error) {
	if !s.IsOpen() {
		return nil, ErrSessionClosed
	}
	next := s.Entry.Clone()
	next.Tags = entry.ParseTags(s.TagsText)
	next.Normalize()
	if err := entry.Validate(next, j.Today()); err != nil {
		return nil, err
	}
	saved, err := j.Update(ctx, next.ID, func(e *entry.Entry) {
		*e = *next
	})
	if err != nil && saved == nil {
		return nil, err
	}
	s.Cancel()
	return saved, err
}

// Cancel discards the working copy.
func (s *Session) Cancel() {
	s.Entry = nil
	s.TagsText = ""
}
