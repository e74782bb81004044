// Package export writes the whole journal in a portable format.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Export struct {
	// Format is json or yaml.
	Format string
	// Tab limits the export to one tab; empty exports everything.
	Tab entry.Type
	Out io.Writer

	Journal *app.Journal
}

func (n *Export) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not export, no journal")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	all := n.Journal.Entries()
	if n.Tab != "" {
		all = app.Visible(all, n.Tab, app.Filter{})
	}

	switch strings.ToLower(strings.TrimSpace(n.Format)) {
	case "", FormatJSON:
		b, err := entry.EncodeList(all)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(all); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (expected json or yaml)", n.Format)
	}
}
