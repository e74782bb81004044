package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/travlog/pkg/commands/options"
	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/runner/calendar"
	"tableflip.dev/travlog/pkg/timeutil"
)

func addCalendar(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:       "calendar [memory|planned]",
		Aliases:   []string{"cal"},
		Short:     "Show a month grid with the number of entries per day",
		ValidArgs: tabArgs[:2],
		Args:      cobra.MaximumNArgs(1),
		Example: `
travlog calendar
travlog calendar planned --next 1 -n 3
travlog calendar --month 2024-05 --day 9
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
			if tab == "" {
				tab = entry.Memory
			}
			var month entry.Date
			if co.Month != "" {
				if month, err = timeutil.ParseMonth(co.Month, e.Journal.Today()); err != nil {
					return oo.HandleError(err)
				}
			}
			c := calendar.Calendar{
				Tab:     tab,
				Month:   month,
				Next:    co.Next,
				Prev:    co.Prev,
				Months:  co.Months,
				Day:     co.Day,
				JSON:    oo.JSON,
				Out:     oo.Out,
				Journal: e.Journal,
			}
			return oo.HandleError(c.Do(cmd.Context()))
		},
	}

	options.AddCalendarArgs(cmd, co)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
