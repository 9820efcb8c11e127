// Package cmd implements the CLI application to manage a resale inventory.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/stashmate"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&listCmd{},
	&addCmd{},
	&setCmd{},
	&rmCmd{},
	&summaryCmd{},
	&chartCmd{},
	&revenueCmd{},
	&exportCmd{},
	&importCmd{},
	&collectionsCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stashPath = flag.String("stash-path", defaultStashPath(), "Path to the stash folder holding collection files")

// defaultStashPath resolves, in order, $STASHMATE_PATH then ~/.stashmate.
func defaultStashPath() string {
	if p := os.Getenv("STASHMATE_PATH"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stashmate"
	}
	return filepath.Join(home, ".stashmate")
}

// StashPath returns the resolved stash folder.
func StashPath() string { return *stashPath }

// loadCollection is the central function to open a collection for commands
// that must not fail on a broken stash: it falls back to the seed collection.
func loadCollection(name string) *stashmate.Ledger {
	return stashmate.LoadOrSeed(StashPath(), name)
}

// findCollection opens a collection strictly, for commands where a broken or
// missing stash is an error.
func findCollection(name string) (*stashmate.Ledger, error) {
	return stashmate.FindLedger(StashPath(), name)
}

func usageError(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitUsageError
}

func failure(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// saveCollection persists a collection back into the stash folder.
func saveCollection(l *stashmate.Ledger) subcommands.ExitStatus {
	if err := stashmate.SaveLedger(StashPath(), l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving collection %q: %v\n", l.Name(), err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
