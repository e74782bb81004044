package options

import (
	"github.com/spf13/cobra"
)

// CalendarOptions
type CalendarOptions struct {
	Month  string
	Next   int
	Prev   int
	Months int
	Day    int
}

func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().StringVar(&o.Month, "month", "",
		`First month to show, example: --month=2024-05. Defaults to this month.`)
	cmd.Flags().IntVar(&o.Next, "next", 0,
		"Move forward this many months.")
	cmd.Flags().IntVar(&o.Prev, "prev", 0,
		"Move back this many months.")
	cmd.Flags().IntVarP(&o.Months, "months", "n", 1,
		"How many months to print.")
	cmd.Flags().IntVar(&o.Day, "day", 0,
		"List the entries on this day of the first month.")
}
