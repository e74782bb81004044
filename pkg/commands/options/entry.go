package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/runner/edit"
	"tableflip.dev/travlog/pkg/timeutil"
)

// EntryOptions are the entry fields shared by add and edit.
type EntryOptions struct {
	Type        string
	Location    string
	Date        string
	Description string
	Category    string
	Mood        string
	Budget      string
	Tags        string
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Location, "location", "l", "",
		"Where the trip is.")
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Day of the trip, example: --date=2024-05-01, --date=yesterday or --date=+3d.`)
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Free text notes.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"One of city, mountain, beach, nature or other.")
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", "",
		"One of super, ok, bad or none. Only kept on memories.")
	cmd.Flags().StringVarP(&o.Budget, "budget", "b", "",
		"Non-negative amount, anything else is stored as no budget.")
	cmd.Flags().StringVarP(&o.Tags, "tags", "t", "",
		`Comma separated tags, example: --tags="food, museums".`)
}

// AddTypeArg lets edit move an entry between tabs.
func AddTypeArg(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.Type, "type", "",
		"Move the entry to memory or planned.")
}

// Draft builds the add form for tab.
func (o *EntryOptions) Draft(tab entry.Type, today entry.Date) (entry.Draft, error) {
	d := entry.Draft{
		Type:        tab,
		Location:    o.Location,
		Description: o.Description,
		Budget:      entry.ParseBudget(o.Budget),
		TagsText:    o.Tags,
	}
	var err error
	if d.Date, err = timeutil.ParseDay(o.Date, today); err != nil {
		return d, err
	}
	if d.Category, err = entry.ParseCategory(o.Category); err != nil {
		return d, err
	}
	if d.Mood, err = entry.ParseMood(o.Mood); err != nil {
		return d, err
	}
	return d, nil
}

// Changes collects only the flags that were set on cmd.
func (o *EntryOptions) Changes(cmd *cobra.Command, today entry.Date) (edit.Changes, error) {
	var c edit.Changes
	changed := cmd.Flags().Changed

	if changed("location") {
		c.Location = &o.Location
	}
	if changed("date") {
		d, err := timeutil.ParseDay(o.Date, today)
		if err != nil {
			return c, err
		}
		if d == nil {
			c.ClearDate = true
		}
		c.Date = d
	}
	if changed("description") {
		c.Description = &o.Description
	}
	if changed("category") {
		cat, err := entry.ParseCategory(o.Category)
		if err != nil {
			return c, err
		}
		c.Category = &cat
	}
	if changed("mood") {
		m, err := entry.ParseMood(o.Mood)
		if err != nil {
			return c, err
		}
		c.Mood = &m
	}
	if changed("budget") {
		c.Budget = &o.Budget
	}
	if changed("tags") {
		c.Tags = &o.Tags
	}
	if changed("type") {
		t, err := entry.ParseType(o.Type)
		if err != nil {
			return c, err
		}
		c.Type = &t
	}
	return c, nil
}
