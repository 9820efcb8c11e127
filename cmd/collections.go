package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stashmate"
	"github.com/google/subcommands"
)

type collectionsCmd struct {
	create string
	delete string
	rename string
	to     string
}

func (*collectionsCmd) Name() string     { return "collections" }
func (*collectionsCmd) Synopsis() string { return "list and manage collections" }
func (*collectionsCmd) Usage() string {
	return `stash collections [-create <name> | -delete <name> | -rename <name> -to <name>]

  Without flags, lists every collection of the stash with its item count.

Usage Examples:
$ stash collections -create cards/vintage
$ stash collections -rename cards/vintage -to cards/graded

`
}

func (c *collectionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.create, "create", "", "Create a new empty collection.")
	f.StringVar(&c.delete, "delete", "", "Delete a collection and its items.")
	f.StringVar(&c.rename, "rename", "", "Rename a collection, requires -to.")
	f.StringVar(&c.to, "to", "", "New name for -rename.")
}

func (c *collectionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch {
	case c.create != "":
		l := stashmate.NewLedger()
		l.Rename(c.create)
		if st := saveCollection(l); st != subcommands.ExitSuccess {
			return st
		}
		fmt.Printf("Created collection %q\n", c.create)

	case c.delete != "":
		if err := stashmate.DeleteLedger(StashPath(), c.delete); err != nil {
			return failure(fmt.Errorf("deleting collection %q: %w", c.delete, err))
		}
		fmt.Printf("Deleted collection %q\n", c.delete)

	case c.rename != "":
		if c.to == "" {
			return usageError(fmt.Errorf("-rename requires -to"))
		}
		l, err := findCollection(c.rename)
		if err != nil {
			return failure(err)
		}
		l.Rename(c.to)
		if st := saveCollection(l); st != subcommands.ExitSuccess {
			return st
		}
		if err := stashmate.DeleteLedger(StashPath(), c.rename); err != nil {
			return failure(fmt.Errorf("removing old collection %q: %w", c.rename, err))
		}
		fmt.Printf("Renamed collection %q to %q\n", c.rename, c.to)

	default:
		ledgers, err := stashmate.FindLedgers(StashPath(), "")
		if err != nil {
			return failure(err)
		}
		if len(ledgers) == 0 {
			fmt.Println("No collections yet.")
			return subcommands.ExitSuccess
		}
		for _, l := range ledgers {
			fmt.Printf("%s\t%d items\n", l.Name(), l.Len())
		}
	}
	return subcommands.ExitSuccess
}
