package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stashmate"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	collection string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite collection files into their canonical form"
}
func (*fmtCmd) Usage() string {
	return `stash fmt [-c <collection>]

  Reads collection files, normalizes the items (assigning missing ids,
  enforcing the sold/soldOn invariant, sorting chronologically) and writes
  them back in canonical JSONL form. By default formats every collection.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.collection, "c", "", "Collection to format. Formats all by default.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledgers, err := stashmate.FindLedgers(StashPath(), c.collection)
	if err != nil {
		return failure(fmt.Errorf("could not load collections: %w", err))
	}
	if len(ledgers) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no collections found to format.")
		return subcommands.ExitSuccess
	}

	for _, ledger := range ledgers {
		// Re-appending normalizes every item and restores canonical order.
		formatted := stashmate.NewLedger()
		formatted.Rename(ledger.Name())
		formatted.Append(ledger.Snapshot()...)

		if err := stashmate.SaveLedger(StashPath(), formatted); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving formatted collection %q: %v\n", ledger.Name(), err)
			continue
		}
		fmt.Fprintf(os.Stderr, "Formatted collection %q.\n", ledger.Name())
	}
	return subcommands.ExitSuccess
}
