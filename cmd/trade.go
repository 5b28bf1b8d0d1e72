package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/etnz/folio/date"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// tradeFlags are the flags shared by the commands recording a transaction.
type tradeFlags struct {
	ticker   string
	quantity string
	price    string
	date     string
}

func (t *tradeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.ticker, "s", "", "Ticker of the security, e.g. AAPL.")
	f.StringVar(&t.quantity, "q", "", "Number of shares.")
	f.StringVar(&t.price, "p", "", "Price per share.")
	f.StringVar(&t.date, "d", "", "Transaction date. Defaults to the date chosen by the API.")
}

// request parses the flags into a transaction request for side.
func (t *tradeFlags) request(side folio.Side) (folio.TransactionRequest, error) {
	if t.ticker == "" || t.quantity == "" || t.price == "" {
		return folio.TransactionRequest{}, errors.New("-s, -q and -p flags are required")
	}
	ticker, err := folio.NormalizeTicker(t.ticker)
	if err != nil {
		return folio.TransactionRequest{}, err
	}
	quantity, err := decimal.NewFromString(t.quantity)
	if err != nil {
		return folio.TransactionRequest{}, fmt.Errorf("invalid quantity %q: %w", t.quantity, err)
	}
	price, err := decimal.NewFromString(t.price)
	if err != nil {
		return folio.TransactionRequest{}, fmt.Errorf("invalid price %q: %w", t.price, err)
	}
	r := folio.NewTransactionRequest(side, ticker, quantity, price)
	if t.date != "" {
		on, err := date.Parse(t.date)
		if err != nil {
			return folio.TransactionRequest{}, fmt.Errorf("invalid date %q: %w", t.date, err)
		}
		r = r.On(on)
	}
	return r, r.Validate()
}

// record creates the transaction for side.
func record(ctx context.Context, t *tradeFlags, side folio.Side) subcommands.ExitStatus {
	r, err := t.request(side)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, client, status := connect()
	if status != subcommands.ExitSuccess {
		return status
	}
	tx, err := client.CreateTransaction(ctx, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording %s transaction: %v\n", side, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, renderer.Transaction(tx, cfg.Currency))
	return subcommands.ExitSuccess
}

type buyCmd struct {
	tradeFlags
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the purchase of a security" }
func (*buyCmd) Usage() string {
	return `folio buy -s <ticker> -q <quantity> -p <price> [-d <date>]

  Records a buy transaction.
`
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return record(ctx, &c.tradeFlags, folio.Buy)
}

type sellCmd struct {
	tradeFlags
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of a security" }
func (*sellCmd) Usage() string {
	return `folio sell -s <ticker> -q <quantity> -p <price> [-d <date>]

  Records a sell transaction. The quantity is always given as a positive number.
`
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return record(ctx, &c.tradeFlags, folio.Sell)
}

type editCmd struct {
	tradeFlags
	id   string
	sell bool
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace an existing transaction" }
func (*editCmd) Usage() string {
	return `folio edit -id <id> [-sell] -s <ticker> -q <quantity> -p <price> [-d <date>]

  Replaces the transaction with the given id. It is a buy unless -sell is set.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	c.tradeFlags.SetFlags(f)
	f.StringVar(&c.id, "id", "", "ID of the transaction to edit (see 'folio tx').")
	f.BoolVar(&c.sell, "sell", false, "The transaction is a sell.")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}
	side := folio.Buy
	if c.sell {
		side = folio.Sell
	}
	r, err := c.request(side)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, client, status := connect()
	if status != subcommands.ExitSuccess {
		return status
	}
	tx, err := client.UpdateTransaction(ctx, c.id, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating transaction %q: %v\n", c.id, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, renderer.Transaction(tx, cfg.Currency))
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction" }
func (*deleteCmd) Usage() string {
	return `folio delete -id <id>

  Deletes the transaction with the given id.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the transaction to delete (see 'folio tx').")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}
	_, client, status := connect()
	if status != subcommands.ExitSuccess {
		return status
	}
	if err := client.DeleteTransaction(ctx, c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting transaction %q: %v\n", c.id, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Deleted transaction %s\n", c.id)
	return subcommands.ExitSuccess
}
