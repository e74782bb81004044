package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/travlog/pkg/commands/options"
	"tableflip.dev/travlog/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	ido := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:       "list [memory|planned|all]",
		Aliases:   []string{"ls"},
		Short:     "List entries of a tab, newest first",
		ValidArgs: tabArgs,
		Args:      cobra.MaximumNArgs(1),
		Example: `
travlog list
travlog list planned --budget-max 500
travlog list all -q lviv --tag food
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			e, err := open(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			tab, err := tabArg(args)
			if err != nil {
				return oo.HandleError(err)
			}
			f, err := fo.Filter(e.Journal.Today())
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				Tab:     tab,
				Filter:  f,
				ShowID:  ido.ShowID,
				JSON:    oo.JSON,
				Out:     oo.Out,
				Journal: e.Journal,
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
