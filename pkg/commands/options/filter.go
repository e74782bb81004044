package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/travlog/pkg/app"
	"tableflip.dev/travlog/pkg/entry"
	"tableflip.dev/travlog/pkg/timeutil"
)

// FilterOptions
type FilterOptions struct {
	Q         string
	Category  string
	Mood      string
	Tag       string
	BudgetMin string
	BudgetMax string
	On        string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Q, "q", "q", "",
		"Text to find in the location or description.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", app.All,
		"Only this category, or all.")
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", app.All,
		"Only this mood, or all. Memories only.")
	cmd.Flags().StringVar(&o.Tag, "tag", "",
		"Only entries with a tag containing this text.")
	cmd.Flags().StringVar(&o.BudgetMin, "budget-min", "",
		"Lowest budget. Entries without a budget are hidden when set.")
	cmd.Flags().StringVar(&o.BudgetMax, "budget-max", "",
		"Highest budget. Entries without a budget are hidden when set.")
	cmd.Flags().StringVar(&o.On, "on", "",
		`Only entries on this day, example: --on=2024-05-01 or --on=today.`)
}

// Filter converts the flags into a query filter.
func (o *FilterOptions) Filter(today entry.Date) (app.Filter, error) {
	f := app.Filter{
		Q:        o.Q,
		Category: o.Category,
		Mood:     o.Mood,
		Tag:      o.Tag,
	}
	var err error
	if f.BudgetMin, err = parseBound("budget-min", o.BudgetMin); err != nil {
		return f, err
	}
	if f.BudgetMax, err = parseBound("budget-max", o.BudgetMax); err != nil {
		return f, err
	}
	day, err := timeutil.ParseDay(o.On, today)
	if err != nil {
		return f, err
	}
	if day != nil {
		f.SelectDay(*day)
	}
	return f, nil
}

func parseBound(name, v string) (*float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q", name, v)
	}
	return &b, nil
}
