package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// recentTransactions is the number of transactions shown on the dashboard.
const recentTransactions = 5

// panel renders p with render when it is ready, and a status line otherwise.
func panel[T any](title string, p folio.Panel[T], render func(T) string) string {
	if v, ok := p.Value(); ok {
		return render(v)
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(title)
	if p.Status() == folio.Failed {
		doc.Blockquote(fmt.Sprintf("Cannot load %s: %v", strings.ToLower(title), p.Err()))
	} else {
		doc.PlainText(md.Italic("Loading..."))
	}
	return doc.String()
}

// DashboardMarkdown renders every panel of the dashboard.
// The watchlist section is omitted when tickers is empty.
func DashboardMarkdown(d *folio.Dashboard, tickers []string, cur string) string {
	var b strings.Builder
	b.WriteString("# Portfolio Dashboard\n\n")

	sections := []string{
		panel("Summary", d.Summary, func(s folio.Summary) string { return SummaryMarkdown(s, cur) }),
		performanceSection(d, cur),
		panel("Top Holdings", d.Holdings, func(hs folio.Holdings) string { return HoldingsMarkdown(hs, cur) }),
		panel("Allocation", d.Allocation, func(a folio.Allocation) string { return AllocationMarkdown(a, cur) }),
		panel("Positions", d.Positions, func(ps folio.Positions) string { return PositionsMarkdown(ps, cur) }),
		panel("Recent Transactions", d.Transactions, func(txs folio.Transactions) string {
			return transactionsMarkdown("Recent Transactions", txs.Recent(recentTransactions), cur)
		}),
	}
	for _, s := range sections {
		b.WriteString(strings.TrimRight(s, "\n"))
		b.WriteString("\n\n")
	}
	// writing to a strings.Builder never fails.
	_ = ConditionalBlock(&b, func(w io.Writer) bool {
		io.WriteString(w, WatchlistMarkdown(tickers))
		return len(tickers) > 0
	})
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func performanceSection(d *folio.Dashboard, cur string) string {
	perf, status, err := d.Performance()
	switch status {
	case folio.Ready:
		return PerformanceMarkdown(perf, cur)
	case folio.Failed:
		return panel("Performance", folio.FailedPanel[folio.Series](err), nil)
	default:
		return panel("Performance", folio.Panel[folio.Series]{}, nil)
	}
}
