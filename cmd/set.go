package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stashmate"
	"github.com/google/subcommands"
)

type setCmd struct {
	collection string
	id         string
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

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "update fields of an existing item" }
func (*setCmd) Usage() string {
	return `stash set -id <id> [-status Sold] [-price x] ...

  Updates an existing item. Only the flags actually given are applied, every
  other field keeps its value.

Usage Examples:
# The card finally sold, at a lower price.
$ stash set -id 3f2a... -status Sold -price 210

`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.collection, "c", "", "Collection holding the item. Defaults to the only collection if one exists.")
	f.StringVar(&c.id, "id", "", "Id of the item to update (required).")
	f.StringVar(&c.name, "name", "", "New item name.")
	f.StringVar(&c.category, "category", "", "New category.")
	f.StringVar(&c.condition, "condition", "", "New condition.")
	f.IntVar(&c.qty, "qty", 0, "New quantity.")
	f.Float64Var(&c.cost, "cost", 0, "New acquisition cost.")
	f.Float64Var(&c.price, "price", 0, "New listing price.")
	f.StringVar(&c.source, "source", "", "New source.")
	f.StringVar(&c.acquired, "acquired", "", "New acquisition date.")
	f.StringVar(&c.status, "status", "", "New status (Listed, In Stock, Sold).")
	f.StringVar(&c.soldOn, "sold-on", "", "New sale date.")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageError(fmt.Errorf("-id is required"))
	}

	ledger, err := findCollection(c.collection)
	if err != nil {
		return failure(err)
	}
	it, ok := ledger.Get(c.id)
	if !ok {
		return failure(fmt.Errorf("no item with id %q in collection %q", c.id, ledger.Name()))
	}

	// Apply only the flags the user actually set.
	var flagErr error
	f.Visit(func(fl *flag.Flag) {
		if flagErr != nil {
			return
		}
		switch fl.Name {
		case "name":
			it.Name = c.name
		case "category":
			it.Category = c.category
		case "condition":
			it.Condition = c.condition
		case "qty":
			it.Qty = c.qty
		case "cost":
			it.Cost = stashmate.USD(c.cost)
		case "price":
			it.Price = stashmate.USD(c.price)
		case "source":
			it.Source = c.source
		case "acquired":
			it.Acquired, flagErr = stashmate.ParseDate(c.acquired)
		case "status":
			it.Status, flagErr = stashmate.ParseStatus(c.status)
		case "sold-on":
			it.SoldOn, flagErr = stashmate.ParseDate(c.soldOn)
		}
	})
	if flagErr != nil {
		return usageError(flagErr)
	}
	if err := it.Validate(); err != nil {
		return usageError(err)
	}

	if err := ledger.Update(it); err != nil {
		return failure(err)
	}
	if st := saveCollection(ledger); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Updated %q in collection %q\n", it.Name, ledger.Name())
	return subcommands.ExitSuccess
}
