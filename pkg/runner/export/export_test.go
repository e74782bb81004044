package export

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
)

func fixture() *app.Journal {
	d := entry.NewDate(2024, 5, 1)
	return app.New([]*entry.Entry{
		{ID: "m", Type: entry.Memory, Location: "Kyiv", Date: &d, Mood: entry.Super, Tags: []string{"food"}},
		{ID: "p", Type: entry.Planned, Location: "Lviv", Photos: entry.Photos{{Src: "a.jpg"}}},
	})
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	e := Export{Format: "yaml", Out: &buf, Journal: fixture()}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}

	var got []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0]["date"] != "2024-05-01" || got[0]["mood"] != "super" {
		t.Fatalf("unexpected memory %v", got[0])
	}
	if got[1]["mood"] != nil || got[1]["budget"] != nil {
		t.Fatalf("expected null mood and budget, got %v", got[1])
	}
}

func TestExportJSONTab(t *testing.T) {
	var buf bytes.Buffer
	e := Export{Tab: entry.Planned, Out: &buf, Journal: fixture()}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}
	got, err := entry.DecodeList(buf.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p" {
		t.Fatalf("unexpected export %+v", got)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	e := Export{Format: "csv", Out: &bytes.Buffer{}, Journal: fixture()}
	if err := e.Do(context.Background()); err == nil || !strings.Contains(err.Error(), "csv") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}
