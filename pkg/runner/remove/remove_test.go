package remove

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
)

func init() {
	color.NoColor = true
}

func fixture() *app.Journal {
	return app.New([]*entry.Entry{
		{ID: "a", Type: entry.Planned, Location: "Lviv"},
		{ID: "b", Type: entry.Planned, Location: "Odesa"},
	})
}

func TestRemove(t *testing.T) {
	j := fixture()
	var buf bytes.Buffer
	r := Remove{ID: "a", Out: &buf, Journal: j}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := j.Get("a"); ok {
		t.Fatal("entry should be gone")
	}
	if strings.Contains(buf.String(), "Lviv") || !strings.Contains(buf.String(), "Odesa") {
		t.Fatalf("unexpected output %q", buf.String())
	}

	buf.Reset()
	r = Remove{ID: "missing", Out: &buf, Journal: j}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("removing an unknown id should succeed, got %v", err)
	}
	if len(j.Entries()) != 1 {
		t.Fatal("unknown id must not change the journal")
	}
}

func TestClearNeedsConfirmation(t *testing.T) {
	j := fixture()
	var buf bytes.Buffer
	if err := (&Clear{Out: &buf, Journal: j}).Do(context.Background()); err == nil {
		t.Fatal("expected refusal without confirmation")
	}
	if len(j.Entries()) != 2 {
		t.Fatal("journal should be untouched")
	}
	if err := (&Clear{Confirm: true, Out: &buf, Journal: j}).Do(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(j.Entries()) != 0 || !strings.Contains(buf.String(), "removed 2 entries") {
		t.Fatalf("unexpected result %q", buf.String())
	}
}
