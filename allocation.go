package folio

import (
	"fmt"
	"strings"
)

// Asset is the current market value of one asset in the allocation chart.
type Asset struct {
	Ticker string  `json:"ticker"`
	Value  float64 `json:"value"`
}

// Validate checks the entry as received from the API.
func (a Asset) Validate() error {
	if a.Ticker == "" {
		return fmt.Errorf("asset without ticker: %w", ErrMalformed)
	}
	if !finite(a.Value) || a.Value < 0 {
		return fmt.Errorf("asset %s: invalid value %v: %w", a.Ticker, a.Value, ErrMalformed)
	}
	return nil
}

// Label returns the display name of the asset.
func (a Asset) Label() string {
	if strings.EqualFold(a.Ticker, "others") {
		return "Others"
	}
	return strings.ToUpper(a.Ticker)
}

// Allocation is the breakdown of the portfolio by asset.
type Allocation []Asset

// Validate validates each entry.
func (a Allocation) Validate() error {
	for i, asset := range a {
		if err := asset.Validate(); err != nil {
			return fmt.Errorf("asset #%d: %w", i, err)
		}
	}
	return nil
}

// Total returns the total value of the allocation.
func (a Allocation) Total() float64 {
	var total float64
	for _, asset := range a {
		total += asset.Value
	}
	return total
}

// Share returns the share of asset in the allocation.
func (a Allocation) Share(asset Asset) Percent { return PercentageOfTotal(asset.Value, a.Total()) }

// Leader returns the asset with the largest value (the first one on ties),
// ok is false for an empty allocation.
func (a Allocation) Leader() (leader Asset, ok bool) {
	for i, asset := range a {
		if i == 0 || asset.Value > leader.Value {
			leader = asset
		}
	}
	return leader, len(a) > 0
}
