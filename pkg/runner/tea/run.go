package teaui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/store"
)

// Run starts the browser and blocks until the user quits or ctx is done.
// When p is set, outside writes to the stored journal are picked up live;
// opts are reused for every reopened journal.
func Run(ctx context.Context, j *app.Journal, p store.Persistence, opts ...app.Option) error {
	m := New(ctx, j)
	if p != nil {
		events, err := p.Watch(ctx)
		if err != nil {
			m.status = "not watching for changes: " + err.Error()
		} else {
			m.persistence, m.events, m.opts = p, events, opts
		}
	}

	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := prog.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
