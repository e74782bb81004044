package app

import (
	"context"
	"testing"

	"tableflip.dev/travlog/pkg/entry"
)

func TestCarouselWraps(t *testing.T) {
	var c Carousel
	if c.Label() != "No photos" {
		t.Fatalf("unexpected empty label %q", c.Label())
	}
	c.Next()
	if c.Index() != 0 {
		t.Fatal("empty carousel should not move")
	}

	c.Reset(3)
	c.Prev()
	if c.Index() != 2 || c.Label() != "Photo 3 of 3" {
		t.Fatalf("expected wrap to the last photo, got %s", c.Label())
	}
	c.Next()
	if c.Index() != 0 {
		t.Fatalf("expected wrap to the first photo, got %d", c.Index())
	}
	c.Seek(-1)
	if c.Index() != 2 {
		t.Fatalf("expected seek to wrap, got %d", c.Index())
	}
}

func TestNavigator(t *testing.T) {
	j, _ := newTestJournal(t)
	ctx := context.Background()
	e, _ := j.Add(ctx, entry.Draft{
		Type:     entry.Planned,
		Location: "Lviv",
		Photos:   entry.Photos{{Src: "a"}, {Src: "b"}},
	})

	var routes []string
	n := Navigator{OnChange: func(id string) { routes = append(routes, id) }}
	if _, ok := n.Resolve(j); ok {
		t.Fatal("home route resolves nothing")
	}

	n.GoToView(e.ID)
	got, ok := n.Resolve(j)
	if !ok || got.ID != e.ID {
		t.Fatal("expected the routed entry")
	}
	if n.Carousel.Label() != "Photo 1 of 2" {
		t.Fatalf("unexpected label %q", n.Carousel.Label())
	}
	n.Carousel.Next()

	n.GoToView("missing")
	if _, ok := n.Resolve(j); ok {
		t.Fatal("unknown id should not resolve")
	}
	if n.Carousel.Index() != 0 {
		t.Fatal("carousel should reset when the route changes")
	}

	n.GoHome()
	if _, routed := n.Current(); routed {
		t.Fatal("expected home route")
	}
	if len(routes) != 3 || routes[2] != "" {
		t.Fatalf("unexpected route changes %v", routes)
	}
}
