package cmd

import (
	"context"
	"flag"

	"github.com/etnz/stashmate"
	"github.com/etnz/stashmate/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	scope scopeFlags
	query queryFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dashboard of a collection" }
func (*summaryCmd) Usage() string {
	return `stash summary [-c <collection>] [-p <period>] [-d <date>] [-q <search>]

  Displays the dashboard: key figures, daily revenue of the period, and the
  matching items. The key figures always cover the whole collection; the
  search only narrows the item list.

Usage Examples:
# This week's dashboard.
$ stash summary -p week

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.scope.SetFlags(f)
	c.query.SetFlags(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, anchor, err := c.scope.parse()
	if err != nil {
		return usageError(err)
	}
	opts, err := c.query.parse()
	if err != nil {
		return usageError(err)
	}

	ledger := loadCollection(c.scope.collection)
	report := stashmate.NewDashboardReport(ledger, opts, period, anchor)
	printMarkdown(renderer.DashboardMarkdown(report))
	return subcommands.ExitSuccess
}
