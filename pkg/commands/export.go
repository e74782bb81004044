package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/travlog/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	var format string

	cmd := &cobra.Command{
		Use:       "export [memory|planned|all]",
		Short:     "Write the journal to stdout as JSON or YAML",
		ValidArgs: tabArgs,
		Args:      cobra.MaximumNArgs(1),
		Example: `
travlog export > backup.json
travlog export planned --format yaml
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			v := "all"
			if len(args) > 0 {
				v = args[0]
			}
			tab, err := tabArg([]string{v})
			if err != nil {
				return err
			}
			e, err := open(cmd.Context())
			if err != nil {
				return err
			}
			x := export.Export{
				Format:  format,
				Tab:     tab,
				Out:     cmd.OutOrStdout(),
				Journal: e.Journal,
			}
			return x.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format. One of 'json' or 'yaml'.")

	topLevel.AddCommand(cmd)
}
