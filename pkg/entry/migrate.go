package entry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// record is the on-disk shape of an entry across every version the journal
// has written: `type` was added later, `photo` predates `photos`, and budget
// and tags were sometimes saved as raw form text.
type record struct {
	ID          string          `json:"id"`
	Type        *Type           `json:"type"`
	Location    string          `json:"location"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Mood        Mood            `json:"mood"`
	Budget      json.RawMessage `json:"budget"`
	Tags        json.RawMessage `json:"tags"`
	Photo       string          `json:"photo"`
	Photos      Photos          `json:"photos"`
}

func (r record) migrate() *Entry {
	e := &Entry{
		ID:          r.ID,
		Type:        Memory,
		Location:    r.Location,
		Description: r.Description,
		Category:    r.Category,
		Mood:        r.Mood,
		Budget:      decodeBudget(r.Budget),
		Tags:        decodeTags(r.Tags),
	}
	if r.Type != nil && *r.Type != "" {
		e.Type = *r.Type
	}
	if r.Date != "" {
		if d, err := parseLoose(r.Date); err == nil {
			e.Date = &d
		}
	}
	switch {
	case len(r.Photos) > 0:
		e.Photos = r.Photos.Clone()
	case r.Photo != "":
		e.Photos = Photos{{Src: r.Photo}}
	}
	e.Normalize()
	return e
}

func decodeBudget(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		if f < 0 {
			return nil
		}
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ParseBudget(s)
	}
	return nil
}

func decodeTags(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		tags := make([]string, 0, len(list))
		for _, t := range list {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
		return tags
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ParseTags(s)
	}
	return nil
}

// DecodeList reads a persisted collection and migrates every record to the
// current shape. An empty or null document is an empty collection.
func DecodeList(data []byte) ([]*Entry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return []*Entry{}, nil
	}
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	out := make([]*Entry, 0, len(records))
	for _, r := range records {
		e := r.migrate()
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		out = append(out, e)
	}
	return out, nil
}

// EncodeList serializes a collection as indented JSON.
func EncodeList(entries []*Entry) ([]byte, error) {
	if entries == nil {
		entries = []*Entry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}
