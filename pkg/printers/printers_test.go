package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
)

func init() {
	color.NoColor = true
}

func TestCollectionEmptyState(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.TitleWithCount("Memories", 0)
	pp.Collection()
	if !strings.Contains(buf.String(), "none") || !strings.Contains(buf.String(), "0 entries") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestCollectionRows(t *testing.T) {
	d := entry.NewDate(2024, 5, 1)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, ShowID: true}
	pp.Collection(&entry.Entry{ID: "abc", Type: entry.Memory, Location: "Kyiv", Date: &d, Category: entry.City, Tags: []string{"food"}})
	out := buf.String()
	for _, want := range []string{"abc", "2024-05-01", "Kyiv", "food"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestDetailCaptionFallback(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	e := &entry.Entry{
		Type:     entry.Planned,
		Location: "Lviv",
		Photos:   entry.Photos{{Src: "data:image/png;base64,AAAA"}, {Src: "https://example.com/b.jpg", Caption: "square"}},
	}
	c := &app.Carousel{}
	c.Reset(len(e.Photos))
	pp.Detail(e, c)
	out := buf.String()
	for _, want := range []string{"Lviv", "undated", "Photo 1 of 2", "no caption", "image/png, 3 B"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}

	buf.Reset()
	c.Next()
	pp.Detail(e, c)
	if !strings.Contains(buf.String(), "square") {
		t.Fatalf("expected second caption in %q", buf.String())
	}
}

func TestNotFound(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.NotFound("nope")
	if !strings.Contains(buf.String(), "Entry not found") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestMonth(t *testing.T) {
	d := entry.NewDate(2024, 5, 3)
	g := app.Aggregate([]*entry.Entry{{Type: entry.Memory, Location: "x", Date: &d}}, entry.Memory, d)
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Month(g, entry.NewDate(2024, 5, 10))
	out := buf.String()
	if !strings.Contains(out, "May 2024") || !strings.Contains(out, "31") || !strings.Contains(out, "1 entry") {
		t.Fatalf("unexpected calendar %q", out)
	}
}
