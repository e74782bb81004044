package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/travlog/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove ID...",
		Aliases: []string{"rm"},
		Short:   "Remove entries; unknown ids are ignored",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range args {
				r := remove.Remove{
					ID:      id,
					Out:     cmd.OutOrStdout(),
					Journal: e.Journal,
				}
				if err := r.Do(cmd.Context()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addClear(topLevel *cobra.Command) {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry from both tabs",
		Args:  cobra.NoArgs,
		Example: `
travlog clear --yes
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd.Context())
			if err != nil {
				return err
			}
			c := remove.Clear{
				Confirm: yes,
				Out:     cmd.OutOrStdout(),
				Journal: e.Journal,
			}
			return c.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm removing everything.")

	topLevel.AddCommand(cmd)
}
