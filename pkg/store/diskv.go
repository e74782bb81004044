package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/peterbourgon/diskv/v3"
	"github.com/rs/zerolog"

	"tableflip.dev/travlog/pkg/entry"
)

// ErrCorrupt is returned by Load when the stored record cannot be decoded.
// The unreadable bytes are kept under a backup key before anything else is
// written.
var ErrCorrupt = errors.New("store: journal record is corrupt")

// Persistence stores the whole journal as a single record.
type Persistence interface {
	Load(ctx context.Context) ([]*entry.Entry, error)
	Save(ctx context.Context, entries []*entry.Entry) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, log zerolog.Logger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: flatTransform,
			InverseTransform:  flatInverseTransform,
			CacheSizeMax:      8 * 1024 * 1024, // photos are inline, keep room for them
		}),
		basePath: basePath,
		key:      cfg.Key(),
		log:      log.With().Str("component", "store").Logger(),
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	key      string
	log      zerolog.Logger
}

func (p *persistence) Load(ctx context.Context) ([]*entry.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !p.d.Has(p.key) {
		p.log.Debug().Str("key", p.key).Msg("no journal record yet")
		return []*entry.Entry{}, nil
	}
	// Read directly: another process may have rewritten the record since the
	// cache was filled.
	val, err := p.read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*entry.Entry{}, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", p.key, err)
	}
	entries, err := entry.DecodeList(val)
	if err != nil {
		backup := fmt.Sprintf("%s.corrupt-%d", p.key, time.Now().Unix())
		if werr := p.d.Write(backup, val); werr != nil {
			p.log.Error().Err(werr).Str("key", backup).Msg("could not back up corrupt record")
		}
		return []*entry.Entry{}, fmt.Errorf("%w: %v (backup at %s)", ErrCorrupt, err, backup)
	}
	p.log.Debug().Int("entries", len(entries)).Msg("journal loaded")
	return entries, nil
}

func (p *persistence) Save(ctx context.Context, entries []*entry.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := entry.EncodeList(entries)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	if err := p.d.Write(p.key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", p.key, err)
	}
	p.log.Debug().Int("entries", len(entries)).Int("bytes", len(data)).Msg("journal saved")
	return nil
}

func (p *persistence) read() ([]byte, error) {
	rc, err := p.d.ReadStream(p.key, true)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func flatTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{}, FileName: key}
}

func flatInverseTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
