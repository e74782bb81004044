package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/travlog/pkg/app"
	teaui "tableflip.dev/travlog/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse the journal in a full screen terminal UI",
		Example: `
travlog ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			e, err := open(ctx)
			if err != nil {
				return err
			}
			return teaui.Run(ctx, e.Journal, e.Persistence, app.WithLogger(e.Log))
		},
	}

	topLevel.AddCommand(cmd)
}
