package photo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"tableflip.dev/travlog/pkg/entry"
)

// Smallest valid PNG header plus IHDR; enough for content sniffing.
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89,
}

var gifBytes = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")

func writeFile(t *testing.T, dir, name string, b []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, b, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestDataURL(t *testing.T) {
	src, err := DataURL(pngBytes)
	if err != nil {
		t.Fatalf("data url: %v", err)
	}
	if !strings.HasPrefix(src, "data:image/png;base64,") {
		t.Fatalf("unexpected data url prefix %q", src[:30])
	}

	if _, err := DataURL([]byte("just some text")); !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.png", pngBytes)
	b := writeFile(t, dir, "b.gif", gifBytes)

	srcs, err := Loader{Limit: 2}.Load(context.Background(), a, b)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(srcs) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(srcs))
	}
	sort.Strings(srcs)
	if !strings.HasPrefix(srcs[0], "data:image/gif") || !strings.HasPrefix(srcs[1], "data:image/png") {
		t.Fatalf("unexpected sources %v", srcs)
	}
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "a.png", pngBytes)
	text := writeFile(t, dir, "notes.txt", []byte("hello"))

	if _, err := (Loader{}).Load(context.Background(), good, text); !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
	if _, err := (Loader{}).Load(context.Background(), filepath.Join(dir, "missing.png")); err == nil {
		t.Fatal("expected missing file error")
	}
	if _, err := (Loader{MaxBytes: 4}).Load(context.Background(), good); err == nil {
		t.Fatal("expected size limit error")
	}
}

func TestAppendTo(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.png", pngBytes)

	photos := entry.Photos{{Src: "existing", Caption: "kept"}}
	if err := (Loader{}).AppendTo(context.Background(), &photos, p); err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(photos) != 2 || photos[0].Caption != "kept" || photos[1].Caption != "" {
		t.Fatalf("unexpected photos %+v", photos)
	}

	if err := (Loader{}).AppendTo(context.Background(), &photos); err != nil || len(photos) != 2 {
		t.Fatal("appending nothing should be a no-op")
	}
}

func TestAppendCaptionedFollowsFiles(t *testing.T) {
	dir := t.TempDir()
	big := writeFile(t, dir, "big.gif", append(append([]byte{}, gifBytes...), make([]byte, 8<<20)...))
	small := writeFile(t, dir, "small.png", pngBytes)

	var photos entry.Photos
	err := Loader{Limit: 2}.AppendCaptioned(context.Background(), &photos, []string{big, small}, []string{"BIG", "SMALL"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(photos))
	}
	for _, p := range photos {
		switch {
		case strings.HasPrefix(p.Src, "data:image/gif"):
			if p.Caption != "BIG" {
				t.Fatalf("gif got caption %q", p.Caption)
			}
		case strings.HasPrefix(p.Src, "data:image/png"):
			if p.Caption != "SMALL" {
				t.Fatalf("png got caption %q", p.Caption)
			}
		default:
			t.Fatalf("unexpected source %q", Describe(p.Src))
		}
	}
}

func TestLoadEachIndexes(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.png", pngBytes)
	b := writeFile(t, dir, "b.gif", gifBytes)

	loaded, err := (Loader{}).LoadEach(context.Background(), a, b)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	seen := map[int]string{}
	for _, r := range loaded {
		seen[r.Index] = r.Src
	}
	if !strings.HasPrefix(seen[0], "data:image/png") || !strings.HasPrefix(seen[1], "data:image/gif") {
		t.Fatalf("indexes do not match paths: %v", loaded)
	}
}

func TestDescribe(t *testing.T) {
	tests := map[string]string{
		"https://example.com/a.jpg":                          "https://example.com/a.jpg",
		"data:image/png;base64,AAAA":                         "image/png, 3 B",
		"data:image/gif;base64," + strings.Repeat("A", 4096): "image/gif, 3.0 KB",
		"data:broken": "data URL",
	}
	for in, want := range tests {
		if got := Describe(in); got != want {
			t.Fatalf("Describe(%.30q): expected %q, got %q", in, want, got)
		}
	}
}
