// Package glyph maps journal enums onto the symbols used in terminal output.
package glyph

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

var categories = map[string]Glyph{
	"city":     {Key: "city", Symbol: "▣", Meaning: "city"},
	"mountain": {Key: "mountain", Symbol: "▲", Meaning: "mountain"},
	"beach":    {Key: "beach", Symbol: "≈", Meaning: "beach"},
	"nature":   {Key: "nature", Symbol: "♣", Meaning: "nature"},
	"other":    {Key: "other", Symbol: "•", Meaning: "other"},
}

var moods = map[string]Glyph{
	"super": {Key: "super", Symbol: "☺", Meaning: "super"},
	"ok":    {Key: "ok", Symbol: "○", Meaning: "ok"},
	"bad":   {Key: "bad", Symbol: "☹", Meaning: "bad"},
	"":      {Key: "", Symbol: " ", Meaning: "none"},
}

var types = map[string]Glyph{
	"memory":  {Key: "memory", Symbol: "✓", Meaning: "memory"},
	"planned": {Key: "planned", Symbol: "›", Meaning: "planned"},
}

// Category returns the glyph for a category key, falling back to "other".
func Category(key string) Glyph {
	if g, ok := categories[key]; ok {
		return g
	}
	return categories["other"]
}

func Mood(key string) Glyph {
	if g, ok := moods[key]; ok {
		return g
	}
	return moods[""]
}

func Type(key string) Glyph {
	if g, ok := types[key]; ok {
		return g
	}
	return types["memory"]
}

// Categories lists the category glyphs in display order.
func Categories() []Glyph {
	return ordered(categories, "city", "mountain", "beach", "nature", "other")
}

// Moods lists the mood glyphs, the empty mood excluded.
func Moods() []Glyph {
	return ordered(moods, "super", "ok", "bad")
}

func Types() []Glyph {
	return ordered(types, "memory", "planned")
}

func ordered(m map[string]Glyph, keys ...string) []Glyph {
	out := make([]Glyph, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

func (g Glyph) String() string {
	return g.Symbol
}
