package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rmCmd struct {
	collection string
	id         string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove an item from a collection" }
func (*rmCmd) Usage() string {
	return `stash rm -id <id> [-c <collection>]

  Removes the item with the given id.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.collection, "c", "", "Collection holding the item. Defaults to the only collection if one exists.")
	f.StringVar(&c.id, "id", "", "Id of the item to remove (required).")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageError(fmt.Errorf("-id is required"))
	}

	ledger, err := findCollection(c.collection)
	if err != nil {
		return failure(err)
	}
	if !ledger.Delete(c.id) {
		return failure(fmt.Errorf("no item with id %q in collection %q", c.id, ledger.Name()))
	}
	if st := saveCollection(ledger); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Removed item %s from collection %q\n", c.id, ledger.Name())
	return subcommands.ExitSuccess
}
