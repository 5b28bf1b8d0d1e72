package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage: 12.5 means 12.5%.
type Percent float64

// PercentChange returns amount relative to base, 0 if base is zero.
func PercentChange(amount, base float64) Percent {
	if base == 0 {
		return 0
	}
	return Percent(amount / base * 100)
}

// PercentageOfTotal returns the share of value in total, 0 if total is not positive.
func PercentageOfTotal(value, total float64) Percent {
	if total <= 0 {
		return 0
	}
	return Percent(value / total * 100)
}

// Fixed formats p with exactly 'places' decimals, rounding half away from
// zero, and no percent sign: Percent(25).Fixed(2) is "25.00".
func (p Percent) Fixed(places int32) string {
	return decimal.NewFromFloat(float64(p)).StringFixed(places)
}

func (p Percent) String() string {
	return fmt.Sprintf("%s%%", p.Fixed(2))
}

// SignedString formats p with an explicit sign, 0 is "-".
func (p Percent) SignedString() string {
	s := p.Fixed(2)
	switch s {
	case "0.00", "-0.00":
		return "-"
	}
	if p > 0 {
		s = "+" + s
	}
	return s + "%"
}

// Trend classifies a change. There is no flat tier: zero is a Gain.
type Trend int

const (
	Gain Trend = iota
	Loss
)

// TrendOf classifies a signed change.
func TrendOf(change float64) Trend {
	if change < 0 {
		return Loss
	}
	return Gain
}

func (t Trend) String() string {
	if t == Loss {
		return "loss"
	}
	return "gain"
}

// Symbol returns an arrow for the trend.
func (t Trend) Symbol() string {
	if t == Loss {
		return "▼"
	}
	return "▲"
}
