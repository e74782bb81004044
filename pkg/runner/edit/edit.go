// Package edit provides the runner that changes an entry through an edit
// session.
package edit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/photo"
	"tableflip.dev/travlog/pkg/printers"
)

// Changes holds the fields to overwrite. Nil fields are left alone.
type Changes struct {
	Type        *entry.Type
	Location    *string
	Date        *entry.Date
	ClearDate   bool
	Description *string
	Category    *entry.Category
	Mood        *entry.Mood
	Budget      *string
	Tags        *string
}

type Edit struct {
	ID      string
	Changes Changes

	AddPhotos []string
	// CaptionAt maps 0-based photo positions, counted before removals, to
	// new captions.
	CaptionAt map[int]string
	// RemovePhotos are 0-based positions, removed highest first.
	RemovePhotos []int
	Loader       photo.Loader

	// DryRun prints the result and cancels the session.
	DryRun bool
	ShowID bool
	JSON   bool
	Out    io.Writer

	Journal *app.Journal
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not edit, no journal")
	}

	var s app.Session
	if err := s.OpenID(n.Journal, n.ID); err != nil {
		return fmt.Errorf("%w: %s", err, n.ID)
	}
	n.apply(&s)

	photos := s.Photos()
	for i, text := range n.CaptionAt {
		if !photos.SetCaption(i, text) {
			s.Cancel()
			return fmt.Errorf("no photo at position %d", i)
		}
	}
	removals := append([]int(nil), n.RemovePhotos...)
	sort.Sort(sort.Reverse(sort.IntSlice(removals)))
	// Positions refer to the list before any removal, so each goes once.
	removals = slices.Compact(removals)
	for _, i := range removals {
		if !photos.RemoveAt(i) {
			s.Cancel()
			return fmt.Errorf("no photo at position %d", i)
		}
	}
	if err := n.Loader.AppendTo(ctx, photos, n.AddPhotos...); err != nil {
		s.Cancel()
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}

	if n.DryRun {
		preview := s.Entry.Clone()
		preview.Tags = entry.ParseTags(s.TagsText)
		preview.Normalize()
		err := entry.Validate(preview, n.Journal.Today())
		s.Cancel()
		if err != nil {
			return err
		}
		return n.print(pp, preview)
	}

	saved, err := s.Save(ctx, n.Journal)
	if saved == nil {
		s.Cancel()
		return err
	}
	if perr := n.print(pp, saved); perr != nil {
		return perr
	}
	return err
}

func (n *Edit) apply(s *app.Session) {
	c := n.Changes
	e := s.Entry
	if c.Type != nil {
		e.Type = *c.Type
	}
	if c.Location != nil {
		e.Location = *c.Location
	}
	if c.ClearDate {
		e.Date = nil
	}
	if c.Date != nil {
		d := *c.Date
		e.Date = &d
	}
	if c.Description != nil {
		e.Description = *c.Description
	}
	if c.Category != nil {
		e.Category = *c.Category
	}
	if c.Mood != nil {
		e.Mood = *c.Mood
	}
	if c.Budget != nil {
		e.Budget = entry.ParseBudget(*c.Budget)
	}
	if c.Tags != nil {
		s.TagsText = *c.Tags
	}
}

func (n *Edit) print(pp printers.PrettyPrint, e *entry.Entry) error {
	if n.JSON {
		return pp.JSON(e)
	}
	c := &app.Carousel{}
	c.Reset(len(e.Photos))
	pp.Detail(e, c)
	return nil
}
