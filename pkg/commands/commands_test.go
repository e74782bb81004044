package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/travlog/pkg/entry"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, dir string, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	cmd := New()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append(args, "--path", dir))
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("travlog %s: %v\n%s", strings.Join(args, " "), err, buf.String())
	}
	return buf.String()
}

func TestAddThenList(t *testing.T) {
	dir := t.TempDir()

	out := run(t, dir, "add", "memory", "-l", "Kyiv", "-d", "2024-05-01", "-m", "super", "-t", "food, art", "--json")
	var added entry.Entry
	if err := json.Unmarshal([]byte(out), &added); err != nil {
		t.Fatalf("decode add output %q: %v", out, err)
	}
	if added.ID == "" || added.Location != "Kyiv" || added.Mood != entry.Super {
		t.Fatalf("unexpected entry %+v", added)
	}

	out = run(t, dir, "list", "memory", "--json", "-q", "kyiv")
	var listed []*entry.Entry
	if err := json.Unmarshal([]byte(out), &listed); err != nil {
		t.Fatalf("decode list output %q: %v", out, err)
	}
	if len(listed) != 1 || listed[0].ID != added.ID {
		t.Fatalf("expected the added entry back, got %+v", listed)
	}

	out = run(t, dir, "list", "planned", "--json")
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("expected no planned entries, got %s", out)
	}
}

func TestAddRejectionAsJSON(t *testing.T) {
	out := run(t, t.TempDir(), "add", "memory", "-d", "2024-05-01", "--json")
	if !strings.Contains(out, `"field":"location"`) {
		t.Fatalf("expected a location rejection, got %s", out)
	}
}

func TestKey(t *testing.T) {
	out := run(t, t.TempDir(), "key")
	for _, want := range []string{"Types", "Categories", "Moods"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %s", want, out)
		}
	}
}

func TestTabArg(t *testing.T) {
	tab, err := tabArg([]string{"all"})
	if err != nil || tab != "" {
		t.Fatalf("all should select both tabs, got %q %v", tab, err)
	}
	tab, err = tabArg([]string{"plan"})
	if err != nil || tab != entry.Planned {
		t.Fatalf("expected planned, got %q %v", tab, err)
	}
	if _, err := tabArg([]string{"someday"}); err == nil {
		t.Fatal("expected unknown tab error")
	}
}
