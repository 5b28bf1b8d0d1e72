// Package folio provides the client side of a personal portfolio dashboard.
//
// The portfolio itself (positions, cost basis, live prices, P&L and the
// valuation time series) is computed by a remote REST service. This package
// fetches those figures, validates them at the boundary, and derives the few
// values a dashboard needs on top of them:
//   - Range filtering: trimming the valuation series to a trailing Window
//     anchored on its last date.
//   - Axis generation: a zero-based Y domain and 5 rounded ticks for the
//     performance chart.
//   - Change metrics: absolute and percentage change of each holding, the
//     share of each asset in the allocation, and the gain/loss trend.
//
// All derived values are recomputed on demand and never stored. The
// Dashboard type carries the per-panel loading state and the selected
// Window; the Watchlist is persisted through an injected WatchlistStore.
//
// The `folio` command-line tool (see package cmd) renders all of it as
// markdown in the terminal and can log, edit and delete transactions.
package folio
