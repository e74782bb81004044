// Package entry holds the travel journal record, its photo list and the rules
// that decide whether a record may be saved.
package entry

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Type separates trips that happened from trips that are planned.
type Type string

const (
	Memory  Type = "memory"
	Planned Type = "planned"
)

// ParseType maps user input onto a Type.
func ParseType(v string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "memory", "memories", "m":
		return Memory, nil
	case "planned", "plan", "p":
		return Planned, nil
	}
	return "", fmt.Errorf("unknown entry type %q (expected memory or planned)", v)
}

type Category string

const (
	City     Category = "city"
	Mountain Category = "mountain"
	Beach    Category = "beach"
	Nature   Category = "nature"
	Other    Category = "other"

	DefaultCategory = City
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{City, Mountain, Beach, Nature, Other}
}

func ParseCategory(v string) (Category, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return DefaultCategory, nil
	}
	for _, c := range Categories() {
		if string(c) == v {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", v)
}

// Mood is only meaningful for memories. The empty Mood is stored as null.
type Mood string

const (
	NoMood Mood = ""
	Super  Mood = "super"
	OK     Mood = "ok"
	Bad    Mood = "bad"
)

func Moods() []Mood {
	return []Mood{Super, OK, Bad}
}

func ParseMood(v string) (Mood, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" || v == "none" {
		return NoMood, nil
	}
	for _, m := range Moods() {
		if string(m) == v {
			return m, nil
		}
	}
	return NoMood, fmt.Errorf("unknown mood %q", v)
}

func (m Mood) MarshalJSON() ([]byte, error) {
	if m == NoMood {
		return []byte("null"), nil
	}
	return json.Marshal(string(m))
}

func (m *Mood) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = NoMood
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*m = Mood(v)
	return nil
}

// MarshalYAML writes the empty mood as null.
func (m Mood) MarshalYAML() (interface{}, error) {
	if m == NoMood {
		return nil, nil
	}
	return string(m), nil
}

// Entry is one journal record.
type Entry struct {
	ID          string   `json:"id" yaml:"id"`
	Type        Type     `json:"type" yaml:"type"`
	Location    string   `json:"location" yaml:"location"`
	Date        *Date    `json:"date,omitempty" yaml:"date,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Category    Category `json:"category" yaml:"category"`
	Mood        Mood     `json:"mood" yaml:"mood"`
	Budget      *float64 `json:"budget" yaml:"budget"`
	Tags        []string `json:"tags" yaml:"tags"`
	Photos      Photos   `json:"photos" yaml:"photos"`
}

// Clone returns a deep copy of e.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	if e.Date != nil {
		d := *e.Date
		cp.Date = &d
	}
	if e.Budget != nil {
		b := *e.Budget
		cp.Budget = &b
	}
	cp.Tags = append([]string{}, e.Tags...)
	cp.Photos = e.Photos.Clone()
	return &cp
}

// Normalize applies the write-time rules shared by every mutation path.
func (e *Entry) Normalize() {
	if e.Type == "" {
		e.Type = Memory
	}
	if e.Category == "" {
		e.Category = DefaultCategory
	}
	if e.Type != Memory {
		e.Mood = NoMood
	}
	if e.Date != nil && e.Date.IsZero() {
		e.Date = nil
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	if e.Photos == nil {
		e.Photos = Photos{}
	}
}

// HasDate reports whether the entry carries a calendar day.
func (e *Entry) HasDate() bool {
	return e.Date != nil && !e.Date.IsZero()
}

// Draft is the candidate shape produced by the add form.
type Draft struct {
	Type        Type
	Location    string
	Date        *Date
	Description string
	Category    Category
	Mood        Mood
	Budget      *float64
	TagsText    string

	// Photo is the single-photo field older clients sent.
	Photo  string
	Photos Photos
}

// Entry builds a normalized entry without an id.
func (d Draft) Entry() *Entry {
	e := &Entry{
		Type:        d.Type,
		Location:    d.Location,
		Description: d.Description,
		Category:    d.Category,
		Mood:        d.Mood,
		Tags:        ParseTags(d.TagsText),
	}
	if d.Date != nil {
		day := *d.Date
		e.Date = &day
	}
	if d.Budget != nil {
		b := *d.Budget
		e.Budget = &b
	}
	switch {
	case len(d.Photos) > 0:
		e.Photos = d.Photos.Clone()
	case d.Photo != "":
		e.Photos = Photos{{Src: d.Photo}}
	}
	e.Normalize()
	return e
}

// ParseBudget reads a non-negative amount. Anything else, including an empty
// string, yields nil.
func ParseBudget(v string) *float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil
	}
	return &f
}

// FormatBudget renders a budget for display, "-" when absent.
func FormatBudget(b *float64) string {
	if b == nil {
		return "-"
	}
	return strconv.FormatFloat(*b, 'f', -1, 64)
}
