package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/store"
)

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	j := app.New([]*entry.Entry{
		{ID: "a", Type: entry.Planned, Location: "Lviv", Photos: entry.Photos{{Src: "x"}}},
	})
	n := Info{Config: store.NewConfig("/tmp/travlog", ""), Journal: j, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("info: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"/tmp/travlog", "journalEntries", "Planned", "(1 photos)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
