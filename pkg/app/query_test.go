package app

import (
	"testing"

	"tableflip.dev/travlog/pkg/entry"
)

func budget(v float64) *float64 { return &v }

func queryFixture() []*entry.Entry {
	d := func(m, dd int) *entry.Date {
		v := entry.NewDate(2024, 5, dd)
		if m != 5 {
			v = entry.NewDate(2024, 4, dd)
		}
		return &v
	}
	return []*entry.Entry{
		{ID: "1", Type: entry.Memory, Location: "Kyiv", Date: d(5, 1), Category: entry.City, Mood: entry.Super, Budget: budget(120), Tags: []string{"food", "Museums"}},
		{ID: "2", Type: entry.Memory, Location: "Carpathians", Description: "hiking near Hoverla", Date: d(5, 3), Category: entry.Mountain, Mood: entry.OK},
		{ID: "3", Type: entry.Planned, Location: "Odesa", Date: d(5, 20), Category: entry.Beach, Budget: budget(300)},
		{ID: "4", Type: entry.Planned, Location: "Lviv", Category: entry.City, Tags: []string{"coffee"}},
		{ID: "5", Type: entry.Memory, Location: "Kyiv", Date: d(4, 12), Category: entry.City, Mood: entry.Bad, Budget: budget(40)},
	}
}

func ids(entries []*entry.Entry) string {
	out := ""
	for _, e := range entries {
		out += e.ID
	}
	return out
}

func TestVisible(t *testing.T) {
	all := queryFixture()
	may3 := entry.NewDate(2024, 5, 3)

	tests := map[string]struct {
		tab  entry.Type
		f    Filter
		want string
	}{
		"memory tab":           {entry.Memory, Filter{}, "125"},
		"planned tab":          {entry.Planned, Filter{}, "34"},
		"category all":         {entry.Memory, Filter{Category: "all"}, "125"},
		"category city":        {entry.Memory, Filter{Category: "city"}, "15"},
		"mood super":           {entry.Memory, Filter{Mood: "super"}, "1"},
		"mood ignored planned": {entry.Planned, Filter{Mood: "super"}, "34"},
		"q location":           {entry.Memory, Filter{Q: "kyi"}, "15"},
		"q description":        {entry.Memory, Filter{Q: "HOVERLA"}, "2"},
		"tag substring":        {entry.Memory, Filter{Tag: "muse"}, "1"},
		"tag no match":         {entry.Planned, Filter{Tag: "food"}, ""},
		"budget min":           {entry.Memory, Filter{BudgetMin: budget(50)}, "1"},
		"budget max":           {entry.Memory, Filter{BudgetMax: budget(50)}, "5"},
		"budget excludes nil":  {entry.Planned, Filter{BudgetMin: budget(0)}, "3"},
		"exact day":            {entry.Memory, Filter{DateExact: &may3}, "2"},
		"combined":             {entry.Memory, Filter{Category: "city", Mood: "bad", BudgetMax: budget(100)}, "5"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ids(Visible(all, tt.tab, tt.f)); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestVisibleKeepsOrderAndSource(t *testing.T) {
	all := queryFixture()
	got := Visible(all, entry.Memory, Filter{})
	if len(all) != 5 {
		t.Fatal("Visible must not modify its input")
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].ID > got[i].ID {
			t.Fatalf("order not preserved: %s", ids(got))
		}
	}
}

func TestSelectAndClearDay(t *testing.T) {
	var f Filter
	f.SelectDay(entry.NewDate(2024, 5, 1))
	if got := ids(Visible(queryFixture(), entry.Memory, f)); got != "1" {
		t.Fatalf("expected only the selected day, got %q", got)
	}
	f.ClearDay()
	if f.DateExact != nil {
		t.Fatal("expected day restriction to be cleared")
	}
}
