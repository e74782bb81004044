// Package mcp provides the Model Context Protocol server integration for travlog.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/photo"
	"tableflip.dev/travlog/pkg/timeutil"
)

// Service coordinates journal operations that are shared by the MCP server.
type Service struct {
	Journal *app.Journal
}

var errNoJournal = errors.New("journal is not configured")

// AddEntryOptions captures the parameters used to create a new entry.
type AddEntryOptions struct {
	Type        string
	Location    string
	Date        string
	Description string
	Category    string
	Mood        string
	Budget      string
	Tags        string
	// Photos are image URLs or data URLs, attached in order.
	Photos []string
}

// UpdateEntryOptions lists the fields to change. Nil fields are kept.
type UpdateEntryOptions struct {
	Location    *string
	Date        *string
	Description *string
	Category    *string
	Mood        *string
	Budget      *string
	Tags        *string
}

// ListOptions mirrors app.Filter with string inputs.
type ListOptions struct {
	Tab       string
	Q         string
	Category  string
	Mood      string
	Tag       string
	BudgetMin *float64
	BudgetMax *float64
	Date      string
}

// TabSummary describes a tab and basic aggregate metadata.
type TabSummary struct {
	Name           string `json:"name"`
	EntryCount     int    `json:"entryCount"`
	UndatedCount   int    `json:"undatedCount"`
	PhotoCount     int    `json:"photoCount"`
	LatestLocation string `json:"latestLocation,omitempty"`
}

// PhotoDTO describes a photo without its payload.
type PhotoDTO struct {
	Source  string `json:"source"`
	Caption string `json:"caption"`
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Location    string     `json:"location"`
	Date        string     `json:"date,omitempty"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	Mood        *string    `json:"mood"`
	Budget      *float64   `json:"budget"`
	Tags        []string   `json:"tags"`
	Photos      []PhotoDTO `json:"photos"`
}

// MonthDTO is one calendar month of per-day counts.
type MonthDTO struct {
	Month  string `json:"month"`
	Tab    string `json:"tab"`
	Lead   string `json:"firstWeekday"`
	Counts []int  `json:"counts"`
	Total  int    `json:"total"`
}

// NewService builds a service wrapper around the journal.
func NewService(j *app.Journal) *Service {
	return &Service{Journal: j}
}

// ListTabs returns summaries for both tabs.
func (s *Service) ListTabs(ctx context.Context) ([]TabSummary, error) {
	if s.Journal == nil {
		return nil, errNoJournal
	}

	all := s.Journal.Entries()
	summaries := make([]TabSummary, 0, 2)
	for _, t := range []entry.Type{entry.Memory, entry.Planned} {
		visible := app.Visible(all, t, app.Filter{})
		sum := TabSummary{Name: string(t), EntryCount: len(visible)}
		for _, e := range visible {
			if !e.HasDate() {
				sum.UndatedCount++
			}
			sum.PhotoCount += len(e.Photos)
		}
		if len(visible) > 0 {
			sum.LatestLocation = visible[len(visible)-1].Location
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

// ListEntries gathers the entries passing opts, in journal order.
func (s *Service) ListEntries(ctx context.Context, opts ListOptions) ([]EntryDTO, error) {
	if s.Journal == nil {
		return nil, errNoJournal
	}

	tabs := []entry.Type{entry.Memory, entry.Planned}
	if strings.TrimSpace(opts.Tab) != "" && !strings.EqualFold(opts.Tab, app.All) {
		t, err := entry.ParseType(opts.Tab)
		if err != nil {
			return nil, err
		}
		tabs = []entry.Type{t}
	}

	f := app.Filter{
		Q:         opts.Q,
		Category:  opts.Category,
		Mood:      opts.Mood,
		Tag:       opts.Tag,
		BudgetMin: opts.BudgetMin,
		BudgetMax: opts.BudgetMax,
	}
	if strings.TrimSpace(opts.Date) != "" {
		d, err := timeutil.ParseDay(opts.Date, s.Journal.Today())
		if err != nil {
			return nil, err
		}
		f.SelectDay(*d)
	}

	all := s.Journal.Entries()
	keep := make(map[string]bool, len(all))
	for _, t := range tabs {
		for _, e := range app.Visible(all, t, f) {
			keep[e.ID] = true
		}
	}
	results := make([]EntryDTO, 0, len(keep))
	for _, e := range all {
		if keep[e.ID] {
			results = append(results, toDTO(e))
		}
	}
	return results, nil
}

// SearchEntries performs a substring match across locations and descriptions.
func (s *Service) SearchEntries(ctx context.Context, query string, limit int) ([]EntryDTO, error) {
	if s.Journal == nil {
		return nil, errNoJournal
	}
	if strings.TrimSpace(query) == "" {
		return []EntryDTO{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	results, err := s.ListEntries(ctx, ListOptions{Q: query})
	if err != nil {
		return nil, err
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// AddEntry validates and stores a new entry.
func (s *Service) AddEntry(ctx context.Context, opts AddEntryOptions) (*EntryDTO, error) {
	if s.Journal == nil {
		return nil, errNoJournal
	}

	d := entry.Draft{
		Location:    opts.Location,
		Description: opts.Description,
		Budget:      entry.ParseBudget(opts.Budget),
		TagsText:    opts.Tags,
	}
	var err error
	if d.Type, err = entry.ParseType(opts.Type); err != nil {
		return nil, err
	}
	if d.Category, err = entry.ParseCategory(opts.Category); err != nil {
		return nil, err
	}
	if d.Mood, err = entry.ParseMood(opts.Mood); err != nil {
		return nil, err
	}
	if d.Date, err = timeutil.ParseDay(opts.Date, s.Journal.Today()); err != nil {
		return nil, err
	}
	d.Photos.Append(opts.Photos...)

	e, err := s.Journal.Add(ctx, d)
	if e == nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, err
}

// UpdateEntry edits an entry through an edit session.
func (s *Service) UpdateEntry(ctx context.Context, id string, opts UpdateEntryOptions) (*EntryDTO, error) {
	if s.Journal == nil {
		return nil, errNoJournal
	}

	var sess app.Session
	if err := sess.OpenID(s.Journal, id); err != nil {
		return nil, fmt.Errorf("%w: %s", err, id)
	}
	defer sess.Cancel()

	e := sess.Entry
	if opts.Location != nil {
		e.Location = *opts.Location
	}
	if opts.Description != nil {
		e.Description = *opts.Description
	}
	if opts.Date != nil {
		d, err := timeutil.ParseDay(*opts.Date, s.Journal.Today())
		if err != nil {
			return nil, err
		}
		e.Date = d
	}
	if opts.Category != nil {
		c, err := entry.ParseCategory(*opts.Category)
		if err != nil {
			return nil, err
		}
		e.Category = c
	}
	if opts.Mood != nil {
		m, err := entry.ParseMood(*opts.Mood)
		if err != nil {
			return nil, err
		}
		e.Mood = m
	}
	if opts.Budget != nil {
		e.Budget = entry.ParseBudget(*opts.Budget)
	}
	if opts.Tags != nil {
		sess.TagsText = *opts.Tags
	}

	saved, err := sess.Save(ctx, s.Journal)
	if saved == nil {
		return nil, err
	}
	dto := toDTO(saved)
	return &dto, err
}

// RemoveEntry deletes an entry. Unknown ids succeed.
func (s *Service) RemoveEntry(ctx context.Context, id string) error {
	if s.Journal == nil {
		return errNoJournal
	}
	if id == "" {
		return errors.New("id is required")
	}
	return s.Journal.Remove(ctx, id)
}

// ConvertEntry turns a plan into a memory.
func (s *Service) ConvertEntry(ctx context.Context, id string) (*EntryDTO, error) {
	if s.Journal == nil {
		return nil, errNoJournal
	}
	e, err := s.Journal.ConvertToMemory(ctx, id)
	if e == nil {
		return nil, fmt.Errorf("%w: %s", err, id)
	}
	dto := toDTO(e)
	return &dto, err
}

// RescheduleEntry moves an entry to day (YYYY-MM-DD).
func (s *Service) RescheduleEntry(ctx context.Context, id, day string) (*EntryDTO, error) {
	if s.Journal == nil {
		return nil, errNoJournal
	}
	e, err := s.Journal.Reschedule(ctx, id, day)
	if e == nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, err
}

// EntryByID locates an entry by id and returns the DTO representation.
func (s *Service) EntryByID(ctx context.Context, id string) (*EntryDTO, error) {
	if s.Journal == nil {
		return nil, errNoJournal
	}
	if id == "" {
		return nil, errors.New("id is required")
	}
	e, ok := s.Journal.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", app.ErrEntryNotFound, id)
	}
	dto := toDTO(e)
	return &dto, nil
}

// Month aggregates per-day counts for the month given as YYYY-MM.
func (s *Service) Month(ctx context.Context, tab, month string) (*MonthDTO, error) {
	if s.Journal == nil {
		return nil, errNoJournal
	}
	t := entry.Memory
	if strings.TrimSpace(tab) != "" {
		var err error
		if t, err = entry.ParseType(tab); err != nil {
			return nil, err
		}
	}
	anchor, err := timeutil.ParseMonth(month, s.Journal.Today())
	if err != nil {
		return nil, err
	}
	g := app.Aggregate(s.Journal.Entries(), t, anchor)
	return &MonthDTO{
		Month:  g.Anchor.Format("2006-01"),
		Tab:    string(t),
		Lead:   g.Lead.String(),
		Counts: g.Counts(),
		Total:  g.Total(),
	}, nil
}

func toDTO(e *entry.Entry) EntryDTO {
	dto := EntryDTO{
		ID:          e.ID,
		Type:        string(e.Type),
		Location:    e.Location,
		Description: e.Description,
		Category:    string(e.Category),
		Budget:      e.Budget,
		Tags:        append([]string{}, e.Tags...),
		Photos:      make([]PhotoDTO, 0, len(e.Photos)),
	}
	if e.HasDate() {
		dto.Date = e.Date.String()
	}
	if e.Mood != entry.NoMood {
		m := string(e.Mood)
		dto.Mood = &m
	}
	for _, p := range e.Photos {
		dto.Photos = append(dto.Photos, PhotoDTO{Source: photo.Describe(p.Src), Caption: p.Caption})
	}
	return dto
}
