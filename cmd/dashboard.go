package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	window folio.Window
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the whole portfolio dashboard" }
func (*dashboardCmd) Usage() string {
	return `folio dashboard [-r <window>]

  Fetches every panel of the dashboard concurrently and displays them.
  A panel that cannot be loaded is reported in place, the others are still displayed.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.window, "r", "Range of the performance chart (7d, 30d, 90d, 365d, all). Defaults to the config window.")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, client, status := connect()
	if status != subcommands.ExitSuccess {
		return status
	}
	window := cfg.Window
	if c.window != "" {
		window = c.window
	}

	var tickers []string
	wl, err := folio.OpenWatchlist(ctx, folio.FileWatchlist{Path: cfg.Watchlist})
	if err != nil {
		log.WithError(err).Warn("ignoring watchlist")
	} else {
		tickers = wl.Tickers()
	}

	// all panels are fetched concurrently, a single timeout is enough.
	ctx, cancel := withTimeout(ctx, cfg, 1)
	defer cancel()
	d := folio.NewDashboard(window)
	if err := d.Load(ctx, client); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DashboardMarkdown(d, tickers, cfg.Currency))
	return subcommands.ExitSuccess
}
