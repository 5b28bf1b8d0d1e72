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

type watchCmd struct {
	add    string
	remove string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "manage the watchlist" }
func (*watchCmd) Usage() string {
	return `folio watch [-add <ticker>] [-remove <ticker>]

  Adds or removes a ticker from the watchlist, then displays the watchlist.
  The watchlist is stored in the file set by the 'watchlist' config.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Ticker to add to the watchlist.")
	f.StringVar(&c.remove, "remove", "", "Ticker to remove from the watchlist.")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitUsageError
	}
	wl, err := folio.OpenWatchlist(ctx, folio.FileWatchlist{Path: cfg.Watchlist})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.add != "" {
		if err := wl.Add(ctx, c.add); err != nil {
			fmt.Fprintf(os.Stderr, "Error adding %q: %v\n", c.add, err)
			return subcommands.ExitFailure
		}
		log.Infof("watching %s", c.add)
	}
	if c.remove != "" {
		removed, err := wl.Remove(ctx, c.remove)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error removing %q: %v\n", c.remove, err)
			return subcommands.ExitFailure
		}
		if !removed {
			log.Warnf("%s was not in the watchlist", c.remove)
		}
	}

	printMarkdown(renderer.WatchlistMarkdown(wl.Tickers()))
	return subcommands.ExitSuccess
}
