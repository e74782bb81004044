package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// PhotoOptions attach image files on add.
type PhotoOptions struct {
	Files    []string
	Captions []string
	Parallel int
}

func AddPhotoArgs(cmd *cobra.Command, o *PhotoOptions) {
	cmd.Flags().StringSliceVarP(&o.Files, "photo", "p", nil,
		"Image file to attach, repeatable.")
	cmd.Flags().StringArrayVar(&o.Captions, "caption", nil,
		"Caption for the photo in the same position, repeatable.")
	cmd.Flags().IntVar(&o.Parallel, "parallel", 4,
		"How many photo files to read at once.")
}

// EditPhotoOptions change the photo list of an existing entry. Positions
// are 1-based, matching the detail view.
type EditPhotoOptions struct {
	Add       []string
	CaptionAt []string
	Remove    []int
}

func AddEditPhotoArgs(cmd *cobra.Command, o *EditPhotoOptions) {
	cmd.Flags().StringSliceVar(&o.Add, "add-photo", nil,
		"Image file to append, repeatable.")
	cmd.Flags().StringArrayVar(&o.CaptionAt, "caption-at", nil,
		`Set a caption, example: --caption-at="2=Sunset over the bay".`)
	cmd.Flags().IntSliceVar(&o.Remove, "remove-photo", nil,
		"Position of a photo to remove, repeatable.")
}

// Captions parses --caption-at into 0-based positions.
func (o *EditPhotoOptions) Captions() (map[int]string, error) {
	out := make(map[int]string, len(o.CaptionAt))
	for _, v := range o.CaptionAt {
		pos, text, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --caption-at %q, want N=text", v)
		}
		n, err := strconv.Atoi(strings.TrimSpace(pos))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid photo position %q", pos)
		}
		out[n-1] = text
	}
	return out, nil
}

// Removals converts --remove-photo into 0-based positions.
func (o *EditPhotoOptions) Removals() []int {
	out := make([]int, 0, len(o.Remove))
	for _, n := range o.Remove {
		out = append(out, n-1)
	}
	return out
}
