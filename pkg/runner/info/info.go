// Package info reports where the journal lives and what it holds.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/store"
)

type Info struct {
	Config  store.Config
	Journal *app.Journal
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("TRAVLOG_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "TRAVLOG_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "TRAVLOG_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.key: ", n.Config.Key())

	if n.Journal == nil {
		return errors.New("failed to open the journal")
	}

	all := n.Journal.Entries()
	_, _ = fmt.Fprintf(out, "Entries:\n")
	for _, t := range []entry.Type{entry.Memory, entry.Planned} {
		visible := app.Visible(all, t, app.Filter{})
		photos := 0
		for _, e := range visible {
			photos += len(e.Photos)
		}
		_, _ = fmt.Fprintf(out, "  %-9s %d (%d photos)\n", t.Title(), len(visible), photos)
	}
	return nil
}
