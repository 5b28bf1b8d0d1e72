package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Position is the current holding of one ticker, valued by the API.
type Position struct {
	ID         string          `json:"id"`
	Ticker     string          `json:"ticker"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	AvgPrice   decimal.Decimal `json:"avg_price"`
	LivePrice  decimal.Decimal `json:"live_price"`
	PriceDelta decimal.Decimal `json:"price_delta"`
	PctDelta   Percent         `json:"pct_delta"`
	PnL        decimal.Decimal `json:"pnl"`
}

// MarketValue returns the position valued at the live price.
func (p Position) MarketValue() decimal.Decimal { return p.Quantity.Mul(p.LivePrice) }

// Trend classifies the position P&L.
func (p Position) Trend() Trend { return TrendOf(p.PnL.InexactFloat64()) }

// Validate checks the position as received from the API.
func (p Position) Validate() error {
	switch {
	case p.ID == "":
		return fmt.Errorf("position without id: %w", ErrMalformed)
	case p.Ticker == "":
		return fmt.Errorf("position %s without ticker: %w", p.ID, ErrMalformed)
	case p.AvgPrice.IsNegative() || p.LivePrice.IsNegative():
		return fmt.Errorf("position %s: negative price: %w", p.Ticker, ErrMalformed)
	}
	return nil
}

// Positions is the content of the portfolio table.
type Positions []Position

// Validate validates each position.
func (ps Positions) Validate() error {
	for i, p := range ps {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("position #%d: %w", i, err)
		}
	}
	return nil
}

// MarketValue returns the total market value of the positions.
func (ps Positions) MarketValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range ps {
		total = total.Add(p.MarketValue())
	}
	return total
}
