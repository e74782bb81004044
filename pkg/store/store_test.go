package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/travlog/pkg/entry"
)

func newTestPersistence(t *testing.T) (Persistence, string) {
	t.Helper()
	base := t.TempDir()
	p, err := Load(NewConfig(base, ""), zerolog.Nop())
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p, base
}

func TestLoadMissingRecordIsEmpty(t *testing.T) {
	p, _ := newTestPersistence(t)
	entries, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty journal, got %d entries", len(entries))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p, base := newTestPersistence(t)
	ctx := context.Background()
	day := entry.NewDate(2024, time.March, 3)
	in := []*entry.Entry{
		{ID: "1", Type: entry.Memory, Location: "Kyiv", Date: &day, Mood: entry.Super},
		{ID: "2", Type: entry.Planned, Location: "Lviv"},
	}
	for _, e := range in {
		e.Normalize()
	}
	if err := p.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(base, DefaultKey))
	if err != nil {
		t.Fatalf("read record file: %v", err)
	}
	if !strings.Contains(string(raw), "\n  {") {
		t.Fatalf("expected indented json record, got %s", raw)
	}

	out, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0].ID != "1" || out[1].ID != "2" {
		t.Fatalf("unexpected entries after round trip: %v", out)
	}
	if out[0].Mood != entry.Super || !out[0].Date.Equal(day) {
		t.Fatalf("memory fields lost: %+v", out[0])
	}
}

func TestLoadCorruptRecord(t *testing.T) {
	p, base := newTestPersistence(t)
	if err := os.WriteFile(filepath.Join(base, DefaultKey), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	entries, err := p.Load(context.Background())
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty collection on corruption, got %d", len(entries))
	}
	matches, _ := filepath.Glob(filepath.Join(base, DefaultKey+".corrupt-*"))
	if len(matches) != 1 {
		t.Fatalf("expected one backup of the corrupt record, got %v", matches)
	}
}

func TestLoadLegacyRecord(t *testing.T) {
	p, base := newTestPersistence(t)
	legacy := `[{"id":"old","location":"Odesa","date":"2020-08-01","photo":"data:a"}]`
	if err := os.WriteFile(filepath.Join(base, DefaultKey), []byte(legacy), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	entries, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 1 || entries[0].Type != entry.Memory {
		t.Fatalf("expected migrated memory entry, got %v", entries)
	}
	if len(entries[0].Photos) != 1 || entries[0].Photos[0].Src != "data:a" {
		t.Fatalf("expected legacy photo in photos, got %#v", entries[0].Photos)
	}
}

func TestPersistenceWatchEmitsJournalChanges(t *testing.T) {
	p, _ := newTestPersistence(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before storing.
	time.Sleep(50 * time.Millisecond)

	e := &entry.Entry{ID: "1", Type: entry.Planned, Location: "Lviv"}
	e.Normalize()
	if err := p.Save(context.Background(), []*entry.Entry{e}); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventWatchError {
				return
			}
			if evt.Key != DefaultKey {
				t.Fatalf("expected key %q, got %q", DefaultKey, evt.Key)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for journal change event")
		}
	}
}
