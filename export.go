package folio

import (
	"io"

	"github.com/gocarina/gocsv"
)

// transactionRow is the CSV shape of a transaction.
type transactionRow struct {
	ID       string `csv:"id"`
	Date     string `csv:"transaction_date"`
	Side     string `csv:"side"`
	Ticker   string `csv:"ticker"`
	Name     string `csv:"name"`
	Quantity string `csv:"quantity"`
	Price    string `csv:"price"`
	Amount   string `csv:"amount"`
}

// ExportCSV writes the transactions as CSV, with a header line.
func ExportCSV(w io.Writer, txs Transactions) error {
	rows := make([]*transactionRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, &transactionRow{
			ID:       tx.ID,
			Date:     tx.Date.String(),
			Side:     tx.Side().String(),
			Ticker:   tx.Ticker,
			Name:     tx.Name,
			Quantity: tx.Quantity.String(),
			Price:    tx.Price.String(),
			Amount:   tx.Amount().StringFixed(2),
		})
	}
	return gocsv.Marshal(&rows, w)
}
