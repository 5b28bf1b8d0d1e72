package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// NoData is printed in place of an empty chart.
const NoData = "No data for the selected range."

// PerformanceMarkdown renders the performance chart: the headline change,
// the value axis and the points.
func PerformanceMarkdown(p folio.Performance, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("Performance (%s)", p.Window.Label()))
	if p.Empty() {
		doc.PlainText(NoData)
		return doc.String()
	}

	c := p.Change
	doc.PlainText(fmt.Sprintf("%s %s (%s) %s",
		md.Bold(moneyf(c.Last, cur)),
		folio.M(c.Amount, cur).SignedString(),
		c.Percent.SignedString(),
		c.Trend.Symbol(),
	))

	ticks := make([]string, len(p.Axis.Ticks))
	for i, t := range p.Axis.Ticks {
		ticks[i] = number(t)
	}
	doc.PlainText(fmt.Sprintf("Axis %s to %s, ticks %s",
		number(p.Axis.Domain[0]), number(p.Axis.Domain[1]), strings.Join(ticks, ", ")))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Value"},
	}
	for _, pt := range p.Series {
		table.Rows = append(table.Rows, []string{pt.Date.String(), moneyf(pt.Value, cur)})
	}
	doc.Table(table)
	return doc.String()
}
