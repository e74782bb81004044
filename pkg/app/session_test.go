package app

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/travlog/pkg/entry"
)

func TestSessionSave(t *testing.T) {
	j, mp := newTestJournal(t)
	ctx := context.Background()
	e, err := j.Add(ctx, entry.Draft{Type: entry.Memory, Location: "Kyiv", Date: day(-2), TagsText: "food"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	var s Session
	if err := s.OpenID(j, e.ID); err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.TagsText != "food" {
		t.Fatalf("expected tags text, got %q", s.TagsText)
	}
	s.Entry.Location = "Kyiv, Podil"
	s.TagsText = "food, , river"
	s.Photos().Append("data:image/png;base64,AAAA", "data:image/png;base64,BBBB")
	s.Photos().SetCaption(1, "bridge")

	if got, _ := j.Get(e.ID); got.Location != "Kyiv" {
		t.Fatal("edits must not reach the journal before save")
	}

	saved, err := s.Save(ctx, j)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.IsOpen() {
		t.Fatal("session should close after a successful save")
	}
	if saved.Location != "Kyiv, Podil" || len(saved.Tags) != 2 || len(saved.Photos) != 2 || saved.Photos[1].Caption != "bridge" {
		t.Fatalf("unexpected saved entry %+v", saved)
	}
	if len(mp.entries) != 1 || mp.entries[0].Location != "Kyiv, Podil" {
		t.Fatal("save should write through")
	}
}

func TestSessionRejectionKeepsSessionOpen(t *testing.T) {
	j, _ := newTestJournal(t)
	ctx := context.Background()
	e, _ := j.Add(ctx, entry.Draft{Type: entry.Memory, Location: "Kyiv", Date: day(-2)})

	var s Session
	s.Open(e)
	s.Entry.Date = day(3)
	if _, err := s.Save(ctx, j); reasonOf(t, err) != entry.ReasonFutureMemory {
		t.Fatalf("unexpected error %v", err)
	}
	if !s.IsOpen() {
		t.Fatal("rejected save must keep the session open")
	}
	if got, _ := j.Get(e.ID); !got.Date.Equal(*day(-2)) {
		t.Fatal("rejected save must not change the journal")
	}

	s.Cancel()
	if _, err := s.Save(ctx, j); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}

func TestSessionOpenMissing(t *testing.T) {
	j, _ := newTestJournal(t)
	var s Session
	if err := s.OpenID(j, "nope"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
	if s.Photos() != nil {
		t.Fatal("closed session has no photos")
	}
}
