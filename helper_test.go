package folio

import (
	"github.com/etnz/folio/date"
	"github.com/shopspring/decimal"
)

// P is a helper for test to create a point from a date string.
func P(on string, value float64) Point { return Point{Date: date.MustParse(on), Value: value} }

// D is a helper for test to create decimals from const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// daily returns a series of n consecutive days starting on 'from', with values from value(i).
func daily(from string, n int, value func(i int) float64) Series {
	start := date.MustParse(from)
	s := make(Series, n)
	for i := range s {
		s[i] = Point{Date: start.Add(i), Value: value(i)}
	}
	return s
}
