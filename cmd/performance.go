package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

// performanceCmd holds the flags for the 'performance' subcommand.
type performanceCmd struct {
	window folio.Window
}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "display the portfolio value over a range" }
func (*performanceCmd) Usage() string {
	return `folio performance [-r <window>]

  Displays the portfolio valuation over the trailing window, anchored on the
  last valuation date: the change over the window, the chart axis and the points.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.window, "r", "Range to display (7d, 30d, 90d, 365d, all). Defaults to the config window.")
}

func (c *performanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, client, status := connect()
	if status != subcommands.ExitSuccess {
		return status
	}
	window := cfg.Window
	if c.window != "" {
		window = c.window
	}

	series, err := client.PerformanceSeries(ctx)
	switch {
	case errors.Is(err, folio.ErrMalformed):
		log.WithError(err).Warn("ignoring malformed performance series")
		series = nil
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error fetching performance: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PerformanceMarkdown(folio.NewPerformance(series, window), cfg.Currency))
	return subcommands.ExitSuccess
}
