package list

import (
	"bytes"
	"context"
	"encoding/json"
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
	d := entry.NewDate(2024, 5, 1)
	return app.New([]*entry.Entry{
		{ID: "1", Type: entry.Memory, Location: "Kyiv", Date: &d, Mood: entry.Super},
		{ID: "2", Type: entry.Memory, Location: "Odesa", Date: &d, Mood: entry.OK},
		{ID: "3", Type: entry.Planned, Location: "Lviv"},
	})
}

func TestListTab(t *testing.T) {
	var buf bytes.Buffer
	l := List{Tab: entry.Memory, Filter: app.Filter{Mood: "super"}, Out: &buf, Journal: fixture()}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Kyiv") || strings.Contains(out, "Odesa") || strings.Contains(out, "Planned") {
		t.Fatalf("unexpected listing %q", out)
	}
}

func TestListBothTabsJSON(t *testing.T) {
	var buf bytes.Buffer
	l := List{JSON: true, Out: &buf, Journal: fixture()}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	var got []*entry.Entry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 3 || got[2].ID != "3" {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestListEmptyState(t *testing.T) {
	var buf bytes.Buffer
	l := List{Tab: entry.Planned, Out: &buf, Journal: app.New(nil)}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected empty state, got %q", buf.String())
	}
}
