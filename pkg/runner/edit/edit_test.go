package edit

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
)

func init() {
	color.NoColor = true
}

var now = time.Date(2024, time.May, 10, 9, 0, 0, 0, time.Local)

func fixture() *app.Journal {
	d := entry.NewDate(2024, time.May, 1)
	return app.New([]*entry.Entry{{
		ID:       "m",
		Type:     entry.Memory,
		Location: "Kyiv",
		Date:     &d,
		Mood:     entry.OK,
		Tags:     []string{"food"},
		Photos:   entry.Photos{{Src: "a"}, {Src: "b"}, {Src: "c"}},
	}}, app.WithClock(func() time.Time { return now }))
}

func ptr[T any](v T) *T { return &v }

func TestEditFieldsAndPhotos(t *testing.T) {
	j := fixture()
	var buf bytes.Buffer
	e := Edit{
		ID: "m",
		Changes: Changes{
			Location: ptr("Kyiv, Podil"),
			Mood:     ptr(entry.Super),
			Budget:   ptr("75.5"),
			Tags:     ptr("food, river"),
		},
		CaptionAt:    map[int]string{2: "sunset"},
		RemovePhotos: []int{0, 1},
		Out:          &buf,
		Journal:      j,
	}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("edit: %v", err)
	}
	got, _ := j.Get("m")
	if got.Location != "Kyiv, Podil" || got.Mood != entry.Super || *got.Budget != 75.5 || len(got.Tags) != 2 {
		t.Fatalf("unexpected entry %+v", got)
	}
	if len(got.Photos) != 1 || got.Photos[0].Src != "c" || got.Photos[0].Caption != "sunset" {
		t.Fatalf("unexpected photos %+v", got.Photos)
	}
}

func TestEditRepeatedRemovalRemovesOnce(t *testing.T) {
	j := fixture()
	e := Edit{ID: "m", RemovePhotos: []int{0, 0}, Out: &bytes.Buffer{}, Journal: j}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("edit: %v", err)
	}
	got, _ := j.Get("m")
	if len(got.Photos) != 2 || got.Photos[0].Src != "b" || got.Photos[1].Src != "c" {
		t.Fatalf("expected [b c], got %+v", got.Photos)
	}
}

func TestEditRejectedLeavesEntry(t *testing.T) {
	j := fixture()
	var buf bytes.Buffer
	future := entry.NewDate(2024, time.June, 1)
	e := Edit{ID: "m", Changes: Changes{Date: &future}, Out: &buf, Journal: j}
	var rej *entry.Rejection
	if err := e.Do(context.Background()); !errors.As(err, &rej) || rej.Reason != entry.ReasonFutureMemory {
		t.Fatalf("expected future memory rejection, got %v", err)
	}
	if got, _ := j.Get("m"); got.Date.String() != "2024-05-01" {
		t.Fatal("rejected edit must not change the entry")
	}
}

func TestEditDryRun(t *testing.T) {
	j := fixture()
	var buf bytes.Buffer
	e := Edit{ID: "m", Changes: Changes{Location: ptr("Elsewhere")}, DryRun: true, Out: &buf, Journal: j}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if got, _ := j.Get("m"); got.Location != "Kyiv" {
		t.Fatal("dry run must not save")
	}
	if buf.Len() == 0 {
		t.Fatal("dry run should print a preview")
	}
}

func TestEditUnknownAndBadPhoto(t *testing.T) {
	j := fixture()
	if err := (&Edit{ID: "nope", Journal: j}).Do(context.Background()); !errors.Is(err, app.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
	if err := (&Edit{ID: "m", RemovePhotos: []int{9}, Journal: j}).Do(context.Background()); err == nil {
		t.Fatal("expected out of range photo error")
	}
}
