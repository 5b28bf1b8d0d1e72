package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Summary holds the headline figures of the portfolio. Percentages are the
// change over the current month unless stated otherwise.
type Summary struct {
	TotalValue        decimal.Decimal `json:"total_value"`
	TotalValuePct     Percent         `json:"total_value_pct"`
	MonthlyPnL        decimal.Decimal `json:"monthly_pnl"`
	MonthlyPnLPct     Percent         `json:"monthly_pnl_pct"`
	AllTimeReturns    decimal.Decimal `json:"all_time_returns"`
	AllTimeReturnsPct Percent         `json:"all_time_returns_pct"`
	Cash              decimal.Decimal `json:"cash"`
	CashPct           Percent         `json:"cash_pct"`
	Invested          decimal.Decimal `json:"invested_val"`
	InvestedPct       Percent         `json:"invested_val_pct"`
}

// Validate checks the summary as received from the API.
func (s Summary) Validate() error {
	if s.TotalValue.IsNegative() {
		return fmt.Errorf("negative total value %s: %w", s.TotalValue, ErrMalformed)
	}
	if s.Cash.IsNegative() {
		return fmt.Errorf("negative cash %s: %w", s.Cash, ErrMalformed)
	}
	return nil
}

// Card is one of the summary headline figures.
type Card struct {
	Title  string
	Amount decimal.Decimal
	Change Percent
	// Caption describes the change, e.g. "Portfolio grew this month".
	Caption string
}

// Trend returns the direction of the card's change.
func (c Card) Trend() Trend { return TrendOf(float64(c.Change)) }

// Cards returns the summary as headline cards, in display order.
func (s Summary) Cards() []Card {
	pick := func(p Percent, up, down string) string {
		if p > 0 {
			return up
		}
		return down
	}
	return []Card{
		{"Total Value", s.TotalValue, s.TotalValuePct, "Portfolio " + pick(s.TotalValuePct, "grew", "shrank") + " this month"},
		{"Invested", s.Invested, s.InvestedPct, "Investment portfolio " + pick(s.InvestedPct, "increased", "decreased") + " this month"},
		{"Monthly P&L", s.MonthlyPnL, s.MonthlyPnLPct, pick(s.MonthlyPnLPct, "Increase", "Decline") + " in value this month"},
		{"All-Time Returns", s.AllTimeReturns, s.AllTimeReturnsPct, "Cumulative portfolio " + pick(s.AllTimeReturnsPct, "gain", "loss")},
		{"Cash", s.Cash, s.CashPct, "Share of the portfolio held in cash"},
	}
}
