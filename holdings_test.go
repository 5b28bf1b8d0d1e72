package folio

import (
	"errors"
	"math"
	"testing"
)

func TestHoldingChange(t *testing.T) {
	tests := []struct {
		name    string
		h       HoldingChange
		fixed   float64
		percent string
		trend   Trend
	}{
		{"gain", HoldingChange{"AAPL", 100, 80}, 20, "25.00", Gain},
		{"loss", HoldingChange{"TSLA", 24000, 26000}, -2000, "-7.69", Loss},
		{"no previous value", HoldingChange{"NVDA", 100, 0}, 100, "0.00", Gain},
		{"unchanged is a gain", HoldingChange{"MSFT", 50, 50}, 0, "0.00", Gain},
		{"rounding half up", HoldingChange{"AMZN", 209, 198}, 11, "5.56", Gain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.FixedChange(); got != tt.fixed {
				t.Errorf("FixedChange() = %v, want %v", got, tt.fixed)
			}
			if got := tt.h.PercentageChange().Fixed(2); got != tt.percent {
				t.Errorf("PercentageChange() = %q, want %q", got, tt.percent)
			}
			if got := tt.h.Trend(); got != tt.trend {
				t.Errorf("Trend() = %v, want %v", got, tt.trend)
			}
		})
	}
}

func TestHoldingChange_ZeroPreviousNeverNaN(t *testing.T) {
	for _, v := range []float64{0, 1, -5, 1e12} {
		p := HoldingChange{Ticker: "X", Value: v}.PercentageChange()
		if p != 0 || math.IsNaN(float64(p)) {
			t.Errorf("PercentageChange() with value %v and no previous value = %v, want 0", v, p)
		}
	}
}

func TestHoldings_Total(t *testing.T) {
	hs := Holdings{
		{"AAPL", 32000, 30000},
		{"TSLA", 24000, 26000},
		{"GOOGL", 18000, 17500},
	}
	total := hs.Total()
	if total.Value != 74000 || total.PreviousValue != 73500 {
		t.Errorf("Total() = %+v", total)
	}
	if got := total.PercentageChange().Fixed(1); got != "0.7" {
		t.Errorf("Total().PercentageChange() = %q, want %q", got, "0.7")
	}
	if got := (Holdings{}).Total().PercentageChange(); got != 0 {
		t.Errorf("empty Total().PercentageChange() = %v, want 0", got)
	}
}

func TestHoldings_Validate(t *testing.T) {
	if err := (Holdings{{"AAPL", 1, 2}}).Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	err := (Holdings{{"AAPL", 1, 2}, {"", 1, 2}}).Validate()
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Validate() = %v, want ErrMalformed", err)
	}
	err = (Holdings{{"AAPL", math.NaN(), 2}}).Validate()
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Validate() = %v, want ErrMalformed", err)
	}
}

func TestAllocation(t *testing.T) {
	a := Allocation{{"aapl", 186}, {"tsla", 205}, {"nvda", 300}, {"others", 309}}
	if got := a.Total(); got != 1000 {
		t.Errorf("Total() = %v, want 1000", got)
	}
	if got := a.Share(a[2]).Fixed(1); got != "30.0" {
		t.Errorf("Share() = %q, want 30.0", got)
	}
	leader, ok := a.Leader()
	if !ok || leader.Ticker != "others" {
		t.Errorf("Leader() = %v, %v", leader, ok)
	}
	if got := leader.Label(); got != "Others" {
		t.Errorf("Label() = %q", got)
	}
	if got := a[0].Label(); got != "AAPL" {
		t.Errorf("Label() = %q", got)
	}
	if _, ok := (Allocation{}).Leader(); ok {
		t.Errorf("Leader() of an empty allocation should not be ok")
	}
}

func TestPercentageOfTotal(t *testing.T) {
	tests := []struct {
		value, total float64
		want         string
	}{
		{25, 100, "25.0"},
		{1, 3, "33.3"},
		{2, 3, "66.7"},
		{10, 0, "0.0"},
		{10, -5, "0.0"},
	}
	for _, tt := range tests {
		if got := PercentageOfTotal(tt.value, tt.total).Fixed(1); got != tt.want {
			t.Errorf("PercentageOfTotal(%v, %v) = %q, want %q", tt.value, tt.total, got, tt.want)
		}
	}
}

func TestPercent_String(t *testing.T) {
	tests := []struct {
		p           Percent
		str, signed string
	}{
		{25, "25.00%", "+25.00%"},
		{-7.6923, "-7.69%", "-7.69%"},
		{0, "0.00%", "-"},
		{0.001, "0.00%", "-"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.p.SignedString(); got != tt.signed {
			t.Errorf("SignedString() = %q, want %q", got, tt.signed)
		}
	}
}
