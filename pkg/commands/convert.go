package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/travlog/pkg/runner/convert"
	"tableflip.dev/travlog/pkg/runner/reschedule"
)

func addConvert(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "convert ID",
		Short: "Turn a planned trip into a memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd.Context())
			if err != nil {
				return err
			}
			c := convert.Convert{
				ID:      args[0],
				Out:     cmd.OutOrStdout(),
				Journal: e.Journal,
			}
			return c.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func addReschedule(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reschedule ID YYYY-MM-DD",
		Short: "Move an entry to another day",
		Args:  cobra.ExactArgs(2),
		Example: `
travlog reschedule <id> 2025-10-01
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd.Context())
			if err != nil {
				return err
			}
			r := reschedule.Reschedule{
				ID:      args[0],
				Day:     args[1],
				Out:     cmd.OutOrStdout(),
				Journal: e.Journal,
			}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
