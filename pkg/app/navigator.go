package app

import (
	"fmt"

	"tableflip.dev/travlog/pkg/entry"
)

// Carousel is the position inside an entry's photo list. It wraps in both
// directions.
type Carousel struct {
	index int
	size  int
}

// Reset points the carousel at the first of size photos.
func (c *Carousel) Reset(size int) {
	c.index = 0
	if size < 0 {
		size = 0
	}
	c.size = size
}

func (c *Carousel) Index() int {
	return c.index
}

func (c *Carousel) Size() int {
	return c.size
}

func (c *Carousel) Next() {
	if c.size > 0 {
		c.index = (c.index + 1) % c.size
	}
}

func (c *Carousel) Prev() {
	if c.size > 0 {
		c.index = (c.index - 1 + c.size) % c.size
	}
}

// Seek moves to photo i, wrapping out-of-range values.
func (c *Carousel) Seek(i int) {
	if c.size == 0 {
		c.index = 0
		return
	}
	c.index = ((i % c.size) + c.size) % c.size
}

// Label is the human position, e.g. "Photo 2 of 5".
func (c *Carousel) Label() string {
	if c.size == 0 {
		return "No photos"
	}
	return fmt.Sprintf("Photo %d of %d", c.index+1, c.size)
}

// Navigator is the route state between the list and a detail view. An
// external router maps it onto whatever addressing the front end uses.
type Navigator struct {
	current  string
	Carousel Carousel
	// OnChange, when set, is called with the new route id ("" for home).
	OnChange func(id string)
}

// GoToView opens the detail route for id.
func (n *Navigator) GoToView(id string) {
	n.set(id)
}

// GoHome returns to the list route.
func (n *Navigator) GoHome() {
	n.set("")
}

// Current returns the open entry id, if any.
func (n *Navigator) Current() (string, bool) {
	return n.current, n.current != ""
}

// Resolve looks up the routed entry. ok is false on the home route and when
// the id no longer exists.
func (n *Navigator) Resolve(j *Journal) (*entry.Entry, bool) {
	id, routed := n.Current()
	if !routed {
		return nil, false
	}
	e, ok := j.Get(id)
	if !ok {
		return nil, false
	}
	if n.Carousel.Size() != len(e.Photos) {
		idx := n.Carousel.Index()
		n.Carousel.Reset(len(e.Photos))
		n.Carousel.Seek(idx)
	}
	return e, true
}

func (n *Navigator) set(id string) {
	if id != n.current {
		n.Carousel.Reset(0)
	}
	n.current = id
	if n.OnChange != nil {
		n.OnChange(id)
	}
}
