package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/travlog/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Where the journal is stored and how many entries it holds.",
		Example: `
travlog info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd.Context())
			if err != nil {
				return err
			}
			s := info.Info{
				Config:  e.Config,
				Journal: e.Journal,
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
