package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stashmate"
	"github.com/google/subcommands"
)

type exportCmd struct {
	collection string
	output     string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a collection as CSV" }
func (*exportCmd) Usage() string {
	return `stash export [-c <collection>] [-o <file.csv>]

  Writes the collection as CSV with a fixed column order, quoted per
  RFC 4180. Defaults to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.collection, "c", "", "Collection to export. Defaults to the only collection if one exists.")
	f.StringVar(&c.output, "o", "", "Output CSV file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := findCollection(c.collection)
	if err != nil {
		return failure(err)
	}

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			return failure(fmt.Errorf("creating output file: %w", err))
		}
		defer out.Close()
	}
	if err := stashmate.ExportCSV(out, ledger.Snapshot()); err != nil {
		return failure(err)
	}
	if c.output != "" {
		fmt.Printf("Exported %d items of %q to %s\n", ledger.Len(), ledger.Name(), c.output)
	}
	return subcommands.ExitSuccess
}
