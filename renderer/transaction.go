package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// Transaction renders a transaction to a string.
func Transaction(tx folio.Transaction, cur string) string {
	verb := "Bought"
	if tx.Side() == folio.Sell {
		verb = "Sold"
	}
	s := fmt.Sprintf("%s %s %s at %s", verb, tx.Quantity.Abs(), tx.Ticker, money(tx.Price, cur))
	if !tx.Date.IsZero() {
		s += " on " + tx.Date.String()
	}
	return s + fmt.Sprintf(" (id %s)", tx.ID)
}

// TransactionsMarkdown renders the transactions table, most recent first.
func TransactionsMarkdown(txs folio.Transactions, cur string) string {
	return transactionsMarkdown("Transactions", txs, cur)
}

func transactionsMarkdown(title string, txs folio.Transactions, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(title)
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Date", "ID", "Side", "Ticker", "Name", "Quantity", "Price", "Amount"},
	}
	for _, tx := range txs.Recent(0) {
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			tx.ID,
			tx.Side().String(),
			tx.Ticker,
			tx.Name,
			tx.Quantity.Abs().String(),
			money(tx.Price, cur),
			money(tx.Amount(), cur),
		})
	}
	doc.Table(table)
	return doc.String()
}
