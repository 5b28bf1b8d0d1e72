package folio

import (
	"fmt"
	"math"
)

// HoldingChange is the value of a holding now and at the start of the
// comparison period (usually a month ago).
type HoldingChange struct {
	Ticker        string  `json:"ticker"`
	Value         float64 `json:"value"`
	PreviousValue float64 `json:"prev_value"`
}

// FixedChange returns the absolute change in value.
func (h HoldingChange) FixedChange() float64 { return h.Value - h.PreviousValue }

// PercentageChange returns the change relative to the previous value, 0 when
// there was no previous value.
func (h HoldingChange) PercentageChange() Percent {
	return PercentChange(h.FixedChange(), h.PreviousValue)
}

// Trend classifies the change as a gain or a loss.
func (h HoldingChange) Trend() Trend { return TrendOf(h.FixedChange()) }

// Validate checks the entry as received from the API.
func (h HoldingChange) Validate() error {
	if h.Ticker == "" {
		return fmt.Errorf("holding without ticker: %w", ErrMalformed)
	}
	if !finite(h.Value) || !finite(h.PreviousValue) {
		return fmt.Errorf("holding %s: invalid values %v, %v: %w", h.Ticker, h.Value, h.PreviousValue, ErrMalformed)
	}
	return nil
}

// Holdings are the entries of the holdings bar chart.
type Holdings []HoldingChange

// Validate validates each entry.
func (hs Holdings) Validate() error {
	for i, h := range hs {
		if err := h.Validate(); err != nil {
			return fmt.Errorf("holding #%d: %w", i, err)
		}
	}
	return nil
}

// Total returns the sum of all holdings as a single entry.
func (hs Holdings) Total() HoldingChange {
	total := HoldingChange{Ticker: "Total"}
	for _, h := range hs {
		total.Value += h.Value
		total.PreviousValue += h.PreviousValue
	}
	return total
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
