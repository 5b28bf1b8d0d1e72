package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the month over month change of the top holdings" }
func (*holdingsCmd) Usage() string {
	return `folio holdings

  Displays the value of the top holdings, their value a month ago and the change.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, client, status := connect()
	if status != subcommands.ExitSuccess {
		return status
	}
	holdings, err := client.Holdings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HoldingsMarkdown(holdings, cfg.Currency))
	return subcommands.ExitSuccess
}

// allocationCmd holds the flags for the 'allocation' subcommand.
type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the portfolio breakdown by asset" }
func (*allocationCmd) Usage() string {
	return `folio allocation

  Displays the value and share of each asset of the portfolio.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {}

func (c *allocationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, client, status := connect()
	if status != subcommands.ExitSuccess {
		return status
	}
	allocation, err := client.Allocation(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching allocation: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AllocationMarkdown(allocation, cfg.Currency))
	return subcommands.ExitSuccess
}
