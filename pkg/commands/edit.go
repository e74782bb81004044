package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/travlog/pkg/commands/options"
	"tableflip.dev/travlog/pkg/photo"
	"tableflip.dev/travlog/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	po := &options.EditPhotoOptions{}
	ido := &options.IDOptions{}
	oo := &options.OutputOptions{}
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change an entry; only the flags given are applied",
		Args:  cobra.ExactArgs(1),
		Example: `
travlog edit <id> -m ok --tags "hiking"
travlog edit <id> --add-photo sunset.jpg --caption-at "1=Arrival"
travlog edit <id> --type memory -d yesterday
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			e, err := open(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			changes, err := eo.Changes(cmd, e.Journal.Today())
			if err != nil {
				return oo.HandleError(err)
			}
			captions, err := po.Captions()
			if err != nil {
				return oo.HandleError(err)
			}
			ed := edit.Edit{
				ID:           args[0],
				Changes:      changes,
				AddPhotos:    po.Add,
				CaptionAt:    captions,
				RemovePhotos: po.Removals(),
				Loader:       photo.Loader{},
				DryRun:       dryRun,
				ShowID:       ido.ShowID,
				JSON:         oo.JSON,
				Out:          oo.Out,
				Journal:      e.Journal,
			}
			return oo.HandleError(ed.Do(cmd.Context()))
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddTypeArg(cmd, eo)
	options.AddEditPhotoArgs(cmd, po)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the edited entry without saving it.")
	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
