package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/stashmate"
	"github.com/google/subcommands"
)

type importCmd struct {
	collection string
	format     string
	path       string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import items from CSV or JSON" }
func (*importCmd) Usage() string {
	return `stash import [-c <collection>] [-format csv|json] [-path <jsonpath>] [file]

  Imports items into a collection. Items carrying an id replace the existing
  item with that id, others are appended as new. Reads from stdin when no
  file is given.

Usage Examples:
# Recover items from a backup dump.
$ stash import -format json -path '$.backup.items' dump.json

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.collection, "c", "", "Collection to import into. Defaults to the only collection if one exists.")
	f.StringVar(&c.format, "format", "csv", "Input format (csv, json).")
	f.StringVar(&c.path, "path", "$", "JSONPath expression locating the item array in a JSON document.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var in io.Reader = os.Stdin
	if f.NArg() > 0 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			return failure(fmt.Errorf("opening input file: %w", err))
		}
		defer file.Close()
		in = file
	}

	var items []stashmate.Item
	var err error
	switch c.format {
	case "csv":
		items, err = stashmate.ImportCSV(in)
	case "json":
		items, err = stashmate.ImportJSON(in, c.path)
	default:
		return usageError(fmt.Errorf("unknown format %q", c.format))
	}
	if err != nil {
		return failure(err)
	}
	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no items found in input.")
		return subcommands.ExitSuccess
	}

	ledger := loadCollection(c.collection)
	ledger.AppendOrUpdate(items...)
	if st := saveCollection(ledger); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Imported %d items into collection %q\n", len(items), ledger.Name())
	return subcommands.ExitSuccess
}
