package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio summary cards" }
func (*summaryCmd) Usage() string {
	return `folio summary

  Displays the total value, invested amount, monthly P&L, all-time returns and cash.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, client, status := connect()
	if status != subcommands.ExitSuccess {
		return status
	}
	summary, err := client.Summary(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching summary: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(summary, cfg.Currency))
	return subcommands.ExitSuccess
}
