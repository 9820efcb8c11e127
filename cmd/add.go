package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stashmate"
	"github.com/google/subcommands"
)

type addCmd struct {
	collection string
	name       string
	category   string
	condition  string
	qty        int
	cost       float64
	price      float64
	source     string
	acquired   string
	status     string
	soldOn     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an item to a collection" }
func (*addCmd) Usage() string {
	return `stash add -name <name> [-c <collection>] [-qty n] [-cost x] [-price x] ...

  Adds a new item. The acquisition date defaults to today; marking the item
  sold without a sale date stamps it with today as well.

Usage Examples:
# A freshly listed card.
$ stash add -name "Charizard Holo" -category Cards -qty 1 -cost 120 -price 250

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.collection, "c", "", "Collection to add to. Defaults to the only collection if one exists.")
	f.StringVar(&c.name, "name", "", "Item name (required).")
	f.StringVar(&c.category, "category", "", "Item category.")
	f.StringVar(&c.condition, "condition", "", "Item condition.")
	f.IntVar(&c.qty, "qty", 1, "Quantity in the batch.")
	f.Float64Var(&c.cost, "cost", 0, "Acquisition cost of the batch.")
	f.Float64Var(&c.price, "price", 0, "Listing price of the batch.")
	f.StringVar(&c.source, "source", "", "Where the item came from.")
	f.StringVar(&c.acquired, "acquired", "0d", "Acquisition date (defaults to today).")
	f.StringVar(&c.status, "status", "Listed", "Item status (Listed, In Stock, Sold).")
	f.StringVar(&c.soldOn, "sold-on", "", "Sale date, only meaningful with -status Sold.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	acquired, err := stashmate.ParseDate(c.acquired)
	if err != nil {
		return usageError(fmt.Errorf("parsing acquired date: %w", err))
	}
	status, err := stashmate.ParseStatus(c.status)
	if err != nil {
		return usageError(err)
	}
	var soldOn stashmate.Date
	if c.soldOn != "" {
		if soldOn, err = stashmate.ParseDate(c.soldOn); err != nil {
			return usageError(fmt.Errorf("parsing sold-on date: %w", err))
		}
	}

	it := stashmate.Item{
		Name:      c.name,
		Category:  c.category,
		Condition: c.condition,
		Qty:       c.qty,
		Cost:      stashmate.USD(c.cost),
		Price:     stashmate.USD(c.price),
		Source:    c.source,
		Acquired:  acquired,
		Status:    status,
		SoldOn:    soldOn,
	}
	if err := it.Validate(); err != nil {
		return usageError(err)
	}

	ledger := loadCollection(c.collection)
	ledger.Append(it)
	if st := saveCollection(ledger); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Added %q to collection %q\n", c.name, ledger.Name())
	return subcommands.ExitSuccess
}
