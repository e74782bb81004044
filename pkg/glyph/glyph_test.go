package glyph

import "testing"

func TestLookupsFallBack(t *testing.T) {
	if Category("volcano").Key != "other" {
		t.Fatalf("unknown category should fall back to other")
	}
	if Mood("ecstatic").Symbol != " " {
		t.Fatalf("unknown mood should render blank")
	}
	if Type("someday").Key != "memory" {
		t.Fatalf("unknown type should fall back to memory")
	}
}

func TestLegendOrder(t *testing.T) {
	cats := Categories()
	if len(cats) != 5 || cats[0].Key != "city" || cats[4].Key != "other" {
		t.Fatalf("unexpected categories %v", cats)
	}
	if len(Moods()) != 3 || len(Types()) != 2 {
		t.Fatal("unexpected legend sizes")
	}
}
