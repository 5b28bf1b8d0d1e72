package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	csv    bool
	ticker string
	head   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions" }
func (*txCmd) Usage() string {
	return `folio tx [-s <ticker>] [-head <n>] [-csv]

  Lists transactions, most recent first, as markdown or as CSV.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.csv, "csv", false, "Export the transactions as CSV.")
	f.StringVar(&p.ticker, "s", "", "Only list transactions of this ticker.")
	f.IntVar(&p.head, "head", 0, "Show only the N most recent transactions.")
}

func (p *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var ticker string
	if p.ticker != "" {
		t, err := folio.NormalizeTicker(p.ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		ticker = t
	}

	cfg, client, status := connect()
	if status != subcommands.ExitSuccess {
		return status
	}
	all, err := client.Transactions(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	transactions := all
	if ticker != "" {
		transactions = transactions.ForTicker(ticker)
	}
	transactions = transactions.Recent(p.head)
	if p.csv {
		if err := folio.ExportCSV(stdout, transactions); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.TransactionsMarkdown(transactions, cfg.Currency))
	return subcommands.ExitSuccess
}
