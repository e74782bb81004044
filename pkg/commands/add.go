package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/travlog/pkg/commands/options"
	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/photo"
	"tableflip.dev/travlog/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a memory or a planned trip",
		Example: `
travlog add memory -l Kyiv -d yesterday -m super -t "food, museums"
travlog add planned -l Lisbon -d 2025-09-01 -b 800
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEntryOf(cmd, entry.Memory, "memory", "Record a trip that already happened.")
	addEntryOf(cmd, entry.Planned, "planned", "Plan a trip, dated today or later.")

	topLevel.AddCommand(cmd)
}

func addEntryOf(parent *cobra.Command, tab entry.Type, use, short string) {
	eo := &options.EntryOptions{}
	po := &options.PhotoOptions{}
	ido := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     use,
		Aliases: []string{use[:1]},
		Short:   short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			e, err := open(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			d, err := eo.Draft(tab, e.Journal.Today())
			if err != nil {
				return oo.HandleError(err)
			}
			a := add.Add{
				Draft:      d,
				PhotoFiles: po.Files,
				Captions:   po.Captions,
				Loader:     photo.Loader{Limit: po.Parallel},
				ShowID:     ido.ShowID,
				JSON:       oo.JSON,
				Out:        oo.Out,
				Journal:    e.Journal,
			}
			return oo.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddPhotoArgs(cmd, po)
	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)

	parent.AddCommand(cmd)
}
