package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stashmate"
	"github.com/google/subcommands"
)

type chartCmd struct {
	scope  scopeFlags
	output string
	width  int
	height int
	scale  float64
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the daily revenue chart as SVG" }
func (*chartCmd) Usage() string {
	return `stash chart -o <file.svg> [-c <collection>] [-p <period>] [-d <date>]

  Renders the daily revenue of the period as an SVG line chart. Days without
  a sale are drawn at zero so gaps stay visible.

Usage Examples:
# This month's revenue, high-DPI.
$ stash chart -p month -scale 2 -o revenue.svg

`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.scope.SetFlags(f)
	f.StringVar(&c.output, "o", "", "Output SVG file. Defaults to stdout.")
	f.IntVar(&c.width, "width", 0, "Chart width in CSS pixels (default 600).")
	f.IntVar(&c.height, "height", 0, "Chart height in CSS pixels (default 180).")
	f.Float64Var(&c.scale, "scale", 1, "Device pixel ratio of the drawing buffer.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, anchor, err := c.scope.parse()
	if err != nil {
		return usageError(err)
	}

	ledger := loadCollection(c.scope.collection)
	report := stashmate.NewDashboardReport(ledger, stashmate.QueryOptions{}, period, anchor)
	layout := stashmate.NewLayout(report.Series, float64(c.width), float64(c.height), c.scale)

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			return failure(fmt.Errorf("creating output file: %w", err))
		}
		defer out.Close()
	}
	if err := stashmate.RenderSVG(out, layout); err != nil {
		return failure(err)
	}
	if c.output != "" {
		fmt.Printf("Wrote chart of %q to %s\n", ledger.Name(), c.output)
	}
	return subcommands.ExitSuccess
}
