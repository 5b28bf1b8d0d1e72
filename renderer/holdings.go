package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// HoldingsMarkdown renders the month over month change of the top holdings,
// with a total line.
func HoldingsMarkdown(hs folio.Holdings, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Top Holdings")
	if len(hs) == 0 {
		doc.PlainText("No holdings.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Ticker", "Value", "Previous", "Change", "%"},
	}
	row := func(h folio.HoldingChange) []string {
		return []string{
			h.Ticker,
			moneyf(h.Value, cur),
			moneyf(h.PreviousValue, cur),
			folio.M(h.FixedChange(), cur).SignedString(),
			h.Trend().Symbol() + " " + h.PercentageChange().String(),
		}
	}
	for _, h := range hs {
		table.Rows = append(table.Rows, row(h))
	}
	total := row(hs.Total())
	for i, cell := range total {
		total[i] = md.Bold(cell)
	}
	table.Rows = append(table.Rows, total)
	doc.Table(table)
	return doc.String()
}

// AllocationMarkdown renders the share of each asset and names the largest one.
func AllocationMarkdown(a folio.Allocation, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Allocation")
	leader, ok := a.Leader()
	if !ok {
		doc.PlainText("No assets.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Asset", "Value", "Share"},
	}
	for _, asset := range a {
		table.Rows = append(table.Rows, []string{asset.Label(), moneyf(asset.Value, cur), a.Share(asset).Fixed(1) + "%"})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Largest position: %s (%s%%)", md.Bold(leader.Label()), a.Share(leader).Fixed(1)))
	return doc.String()
}
