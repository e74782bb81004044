package show

import (
	"bytes"
	"context"
	"errors"
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
	return app.New([]*entry.Entry{{
		ID:       "p",
		Type:     entry.Planned,
		Location: "Lviv",
		Photos:   entry.Photos{{Src: "a.jpg", Caption: "first"}, {Src: "b.jpg"}},
	}})
}

func TestShowWrapsPhotoIndex(t *testing.T) {
	var buf bytes.Buffer
	s := Show{ID: "p", Photo: 4, Out: &buf, Journal: fixture()}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Photo 2 of 2") || !strings.Contains(out, "no caption") {
		t.Fatalf("unexpected detail %q", out)
	}
}

func TestShowNotFound(t *testing.T) {
	var buf bytes.Buffer
	s := Show{ID: "gone", Out: &buf, Journal: fixture()}
	if err := s.Do(context.Background()); !errors.Is(err, app.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
	if !strings.Contains(buf.String(), "Entry not found") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
