// Package photo turns image files into inline data URLs suitable for
// entry.Photo.Src.
package photo

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"

	"tableflip.dev/travlog/pkg/entry"
)

// ErrNotImage is returned for files whose content is not an image.
var ErrNotImage = errors.New("photo: not an image")

// Loader reads files concurrently. The zero value is ready to use.
type Loader struct {
	// Limit caps the number of files read at once; zero means no limit.
	Limit int
	// MaxBytes rejects larger files; zero means no limit.
	MaxBytes int64
}

// DataURL encodes b as a data URL using its detected content type.
func DataURL(b []byte) (string, error) {
	mt := mimetype.Detect(b)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotImage, mt.String())
	}
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}

// File reads one file and returns its data URL.
func (l Loader) File(path string) (string, error) {
	if l.MaxBytes > 0 {
		fi, err := os.Stat(path)
		if err != nil {
			return "", err
		}
		if fi.Size() > l.MaxBytes {
			return "", fmt.Errorf("photo: %s is %d bytes, limit is %d", path, fi.Size(), l.MaxBytes)
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	src, err := DataURL(b)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// Loaded is one finished read. Index is the position of its path in the
// request.
type Loaded struct {
	Index int
	Src   string
}

// LoadEach reads every path as an independent task. Results come back in the
// order the reads finished, not the order of paths. The first failure
// cancels the rest.
func (l Loader) LoadEach(ctx context.Context, paths ...string) ([]Loaded, error) {
	results := make(chan Loaded, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if l.Limit > 0 {
		g.SetLimit(l.Limit)
	}
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := l.File(p)
			if err != nil {
				return err
			}
			results <- Loaded{Index: i, Src: src}
			return nil
		})
	}
	err := g.Wait()
	close(results)
	if err != nil {
		return nil, err
	}

	out := make([]Loaded, 0, len(paths))
	for r := range results {
		out = append(out, r)
	}
	return out, nil
}

// Load is LoadEach without the positions.
func (l Loader) Load(ctx context.Context, paths ...string) ([]string, error) {
	loaded, err := l.LoadEach(ctx, paths...)
	if err != nil {
		return nil, err
	}
	srcs := make([]string, 0, len(loaded))
	for _, r := range loaded {
		srcs = append(srcs, r.Src)
	}
	return srcs, nil
}

// AppendTo loads paths and appends them to photos with empty captions.
func (l Loader) AppendTo(ctx context.Context, photos *entry.Photos, paths ...string) error {
	return l.AppendCaptioned(ctx, photos, paths, nil)
}

// AppendCaptioned appends paths in arrival order. captions[i] labels the
// photo read from paths[i], wherever it lands in the list.
func (l Loader) AppendCaptioned(ctx context.Context, photos *entry.Photos, paths, captions []string) error {
	loaded, err := l.LoadEach(ctx, paths...)
	if err != nil {
		return err
	}
	for _, r := range loaded {
		p := entry.Photo{Src: r.Src}
		if r.Index < len(captions) {
			p.Caption = captions[r.Index]
		}
		*photos = append(*photos, p)
	}
	return nil
}

// Describe summarizes a photo source without dumping a whole data URL.
func Describe(src string) string {
	if !strings.HasPrefix(src, "data:") {
		return src
	}
	header, payload, ok := strings.Cut(strings.TrimPrefix(src, "data:"), ",")
	if !ok {
		return "data URL"
	}
	mime := strings.TrimSuffix(header, ";base64")
	if mime == "" {
		mime = "data"
	}
	size := len(payload)
	if strings.HasSuffix(header, ";base64") {
		size = len(payload) * 3 / 4
	}
	return fmt.Sprintf("%s, %s", mime, humanBytes(size))
}

func humanBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
