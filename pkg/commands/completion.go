package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(travlog completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(travlog completion)
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	for _, c := range topLevel.Commands() {
		switch c.Name() {
		case "show", "edit", "remove", "convert", "reschedule":
			c.ValidArgsFunction = idCompletions
		}
	}

	topLevel.AddCommand(cmd)
}

// idCompletions offers entry ids whose location starts with the typed text,
// or ids starting with it.
func idCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	e, err := open(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	needle := strings.ToLower(toComplete)
	var out []string
	for _, en := range e.Journal.Entries() {
		if strings.HasPrefix(en.ID, toComplete) || strings.HasPrefix(strings.ToLower(en.Location), needle) {
			out = append(out, en.ID+"\t"+en.Location)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
