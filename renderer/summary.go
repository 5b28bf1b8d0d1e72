package renderer

import (
	"bytes"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the summary cards as a table.
func SummaryMarkdown(s folio.Summary, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Summary")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"", "Amount", "Change", ""},
	}
	for _, c := range s.Cards() {
		table.Rows = append(table.Rows, []string{
			md.Bold(c.Title),
			money(c.Amount, cur),
			trend(c.Change),
			c.Caption,
		})
	}
	doc.Table(table)
	return doc.String()
}
