package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
)

// WatchlistMarkdown renders the watched tickers.
func WatchlistMarkdown(tickers []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Watchlist")
	if len(tickers) == 0 {
		doc.PlainText("Your watchlist is empty.")
		return doc.String()
	}
	doc.BulletList(tickers...)
	return doc.String()
}
