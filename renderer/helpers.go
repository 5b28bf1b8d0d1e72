package renderer

import (
	"bytes"
	"io"
	"strconv"

	"github.com/etnz/folio"
	"github.com/shopspring/decimal"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
// It returns the error writing to w.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) error {
	bw := &bytes.Buffer{}
	if !block(bw) {
		return nil
	}
	_, err := io.Copy(w, bw)
	return err
}

// money formats v in cur.
func money(v decimal.Decimal, cur string) string { return folio.M(v, cur).String() }

// moneyf formats a float amount in cur.
func moneyf(v float64, cur string) string { return folio.M(v, cur).String() }

// number formats a plain number with the shortest representation.
func number(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// trend returns the percent change with its trend symbol, e.g. "▲ +2.50%".
func trend(p folio.Percent) string {
	return folio.TrendOf(float64(p)).Symbol() + " " + p.SignedString()
}
