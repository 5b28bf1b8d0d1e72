package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// positionsCmd holds the flags for the 'positions' subcommand.
type positionsCmd struct {
	plain bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display the current positions" }
func (*positionsCmd) Usage() string {
	return `folio positions [-plain]

  Displays each position with its average and live price and its P&L.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "print a plain text table instead of markdown")
}

func (c *positionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, client, status := connect()
	if status != subcommands.ExitSuccess {
		return status
	}
	positions, err := client.Positions(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching positions: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.plain {
		renderer.PositionsText(stdout, positions, cfg.Currency)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.PositionsMarkdown(positions, cfg.Currency))
	return subcommands.ExitSuccess
}
