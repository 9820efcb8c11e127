package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stashmate"
	"github.com/etnz/stashmate/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	collection string
	query      queryFlags
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the items of a collection" }
func (*listCmd) Usage() string {
	return `stash list [-c <collection>] [-q <search>] [-field <field>] [-sort <key[:dir]>]

  Lists items, optionally filtered by a case-insensitive search and sorted
  by any field. Ties keep their chronological order.

Usage Examples:
# All cards, most expensive first.
$ stash list -q cards -sort price:desc

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.collection, "c", "", "Collection to list. Defaults to the only collection if one exists.")
	c.query.SetFlags(f)
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := c.query.parse()
	if err != nil {
		return usageError(err)
	}

	ledger := loadCollection(c.collection)
	items := stashmate.Query(ledger.Snapshot(), opts)

	title := fmt.Sprintf("%s (%d of %d)", ledger.Name(), len(items), ledger.Len())
	printMarkdown(renderer.ItemsMarkdown(title, items))
	return subcommands.ExitSuccess
}
