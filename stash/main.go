package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stashmate/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion. It is a no-op in a normal run and takes
// over the process when the shell asks for completions.
func completion() {
	collection := map[string]complete.Predictor{"c": predict.Something}
	scoped := map[string]complete.Predictor{
		"c": predict.Something,
		"p": predict.Set{"day", "week", "month", "year", "all"},
		"d": predict.Something,
	}

	cli := &complete.Command{
		Sub: map[string]*complete.Command{
			"list":        {Flags: collection},
			"add":         {Flags: collection},
			"set":         {Flags: collection},
			"rm":          {Flags: collection},
			"summary":     {Flags: scoped},
			"chart":       {Flags: scoped},
			"revenue":     {Flags: scoped},
			"export":      {Flags: collection},
			"import":      {Flags: map[string]complete.Predictor{"c": predict.Something, "format": predict.Set{"csv", "json"}}},
			"collections": {},
			"fmt":         {Flags: collection},
			"topic":       {Args: predict.Set{"collections", "ranges", "importing", "chart", "*"}},
		},
		Flags: map[string]complete.Predictor{"stash-path": predict.Dirs("*")},
	}
	cli.Complete("stash")
}
