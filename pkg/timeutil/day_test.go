package timeutil

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/travlog/pkg/entry"
)

var today = entry.NewDate(2024, time.May, 10)

func TestParseDay(t *testing.T) {
	tests := map[string]string{
		"today":      "2024-05-10",
		"Tomorrow":   "2024-05-11",
		"yesterday":  "2024-05-09",
		"2023-12-31": "2023-12-31",
		"6/1":        "2024-06-01",
		"+3d":        "2024-05-13",
		"-1w":        "2024-05-03",
		"1w2d":       "2024-05-19",
	}
	for in, want := range tests {
		got, err := ParseDay(in, today)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", in, err)
		}
		if got.String() != want {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
}

func TestParseDayEmptyAndInvalid(t *testing.T) {
	got, err := ParseDay("  ", today)
	if err != nil || got != nil {
		t.Fatalf("expected nil day, got %v %v", got, err)
	}
	if _, err := ParseDay("someday", today); !errors.Is(err, ErrUnknownDay) {
		t.Fatalf("expected ErrUnknownDay, got %v", err)
	}
}

func TestParseOffset(t *testing.T) {
	if n, err := ParseOffset("-2w1d"); err != nil || n != -15 {
		t.Fatalf("expected -15, got %d %v", n, err)
	}
	if _, err := ParseOffset("3h"); err == nil {
		t.Fatal("hours are not a day offset")
	}
	if _, err := ParseOffset(""); err == nil {
		t.Fatal("expected error for empty offset")
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2024-02", today)
	if err != nil || got.String() != "2024-02-01" {
		t.Fatalf("unexpected month %v %v", got, err)
	}
	got, err = ParseMonth("", today)
	if err != nil || got.String() != "2024-05-01" {
		t.Fatalf("expected current month, got %v %v", got, err)
	}
	if _, err := ParseMonth("May", today); err == nil {
		t.Fatal("expected error for bad month")
	}
}
