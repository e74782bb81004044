package key

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestKeyPrintsLegend(t *testing.T) {
	var buf bytes.Buffer
	k := Key{Out: &buf}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("key: %v", err)
	}
	for _, want := range []string{"Types", "Categories", "Moods", "mountain", "super", "planned"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %q in legend", want)
		}
	}
}
