// Package key provides CLI helpers to display the glyph legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/travlog/pkg/glyph"
)

// Key prints a legend for entry types, categories and moods.
type Key struct {
	// Out defaults to color.Output.
	Out io.Writer
}

// Do renders every legend table.
func (k *Key) Do(ctx context.Context) error {
	if k.Out == nil {
		k.Out = color.Output
	}
	_, _ = fmt.Fprintln(k.Out, "")
	k.Key(ctx, "Types", glyph.Types())
	k.Key(ctx, "Categories", glyph.Categories())
	k.Key(ctx, "Moods", glyph.Moods())
	return nil
}

// Key renders one glyph table under a heading.
func (k *Key) Key(_ context.Context, heading string, glyfs []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(heading), bold.Sprint("Meaning"))
	for _, v := range glyfs {
		tbl.AddRow(v.Symbol, v.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(k.Out, tbl)
	_, _ = fmt.Fprintln(k.Out, "")
}
