package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/travlog/pkg/commands/options"
	"tableflip.dev/travlog/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:       "watch [memory|planned|all]",
		Short:     "Reprint a tab whenever the journal changes on disk",
		ValidArgs: tabArgs,
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			e, err := open(ctx)
			if err != nil {
				return err
			}
			tab, err := tabArg(args)
			if err != nil {
				return err
			}
			f, err := fo.Filter(e.Journal.Today())
			if err != nil {
				return err
			}
			w := watch.Watch{
				Tab:         tab,
				Filter:      f,
				ShowID:      ido.ShowID,
				Out:         cmd.OutOrStdout(),
				Persistence: e.Persistence,
				Log:         e.Log,
			}
			return w.Do(ctx)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, ido)

	topLevel.AddCommand(cmd)
}
