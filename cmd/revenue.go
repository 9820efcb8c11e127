package cmd

import (
	"context"
	"flag"
	"fmt"
	"slices"

	"github.com/etnz/stashmate"
	"github.com/etnz/stashmate/renderer"
	"github.com/google/subcommands"
)

type revenueCmd struct {
	collection string
	period     string
}

func (*revenueCmd) Name() string     { return "revenue" }
func (*revenueCmd) Synopsis() string { return "display realized revenue bucketed by period" }
func (*revenueCmd) Usage() string {
	return `stash revenue [-c <collection>] [-p <period>]

  Displays realized revenue and profit of every sold item, bucketed by day,
  week, month or year of the sale date.

Usage Examples:
# Monthly takings.
$ stash revenue -p month

`
}

func (c *revenueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.collection, "c", "", "Collection to report on. Defaults to the only collection if one exists.")
	f.StringVar(&c.period, "p", "month", "Bucket size (day, week, month, year).")
}

func (c *revenueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := stashmate.ParsePeriod(c.period)
	if err != nil {
		return usageError(fmt.Errorf("parsing period: %w", err))
	}

	ledger := loadCollection(c.collection)
	sold := slices.Collect(ledger.Items(stashmate.BySold()))
	series := stashmate.BuildRevenueSeries(sold, period)
	printMarkdown(renderer.RevenueMarkdown(ledger.Name(), period, series))
	return subcommands.ExitSuccess
}
