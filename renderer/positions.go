package renderer

import (
	"bytes"
	"io"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
	"github.com/olekukonko/tablewriter"
)

var positionsHeader = []string{"Ticker", "Name", "Quantity", "Avg Price", "Live Price", "Delta", "Delta %", "P&L"}

func positionRow(p folio.Position, cur string) []string {
	return []string{
		p.Ticker,
		p.Name,
		p.Quantity.String(),
		money(p.AvgPrice, cur),
		money(p.LivePrice, cur),
		folio.M(p.PriceDelta, cur).SignedString(),
		p.PctDelta.SignedString(),
		folio.M(p.PnL, cur).SignedString(),
	}
}

// PositionsMarkdown renders the portfolio positions table.
func PositionsMarkdown(ps folio.Positions, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Positions")
	if len(ps) == 0 {
		doc.PlainText("No positions.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: positionsHeader,
	}
	for _, p := range ps {
		table.Rows = append(table.Rows, positionRow(p, cur))
	}
	doc.Table(table)
	doc.PlainText("Market value: " + md.Bold(money(ps.MarketValue(), cur)))
	return doc.String()
}

// PositionsText writes the positions as a plain text table.
func PositionsText(w io.Writer, ps folio.Positions, cur string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(positionsHeader)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})
	for _, p := range ps {
		table.Append(positionRow(p, cur))
	}
	table.SetFooter([]string{"", "", "", "", "", "", "Market value", money(ps.MarketValue(), cur)})
	table.Render()
}
