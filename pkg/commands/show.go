package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/travlog/pkg/commands/options"
	"tableflip.dev/travlog/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	ido := &options.IDOptions{}
	oo := &options.OutputOptions{}
	var pos int

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show the details of one entry",
		Args:  cobra.ExactArgs(1),
		Example: `
travlog show 6f1c0f4e-2b7a-4a55-9d1e-2b8f3c8b9a10 --photo 2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			e, err := open(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			s := show.Show{
				ID:      args[0],
				Photo:   pos,
				ShowID:  ido.ShowID,
				JSON:    oo.JSON,
				Out:     oo.Out,
				Journal: e.Journal,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().IntVar(&pos, "photo", 0, "Photo to show first, counted from 1.")
	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
