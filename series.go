package folio

import (
	"fmt"
	"math"

	"github.com/etnz/folio/date"
)

// Point is the valuation of the whole portfolio on a given day.
type Point struct {
	Date  date.Date `json:"date"`
	Value float64   `json:"value"`
}

// Series is a chronological valuation series, ascending by date.
type Series []Point

// Validate checks that the series is strictly ascending with valid,
// non-negative values.
func (s Series) Validate() error {
	for i, p := range s {
		if p.Date.IsZero() {
			return fmt.Errorf("point #%d: missing date: %w", i, ErrMalformed)
		}
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) || p.Value < 0 {
			return fmt.Errorf("point #%d on %s: invalid value %v: %w", i, p.Date, p.Value, ErrMalformed)
		}
		if i > 0 && !p.Date.After(s[i-1].Date) {
			return fmt.Errorf("point #%d on %s: not after %s: %w", i, p.Date, s[i-1].Date, ErrMalformed)
		}
	}
	return nil
}

// Values returns the values of the series.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// Filter returns the points of s within the trailing window w, anchored on
// the last date in s (not today).
//
// For All, s itself is returned. Otherwise a new slice is returned holding
// every point dated on or after last-days(w). It can be empty.
func Filter(s Series, w Window) Series {
	days, ok := w.Days()
	if !ok || len(s) == 0 {
		return s
	}
	r := date.Trailing(s[len(s)-1].Date, days)

	res := make(Series, 0, len(s))
	for _, p := range s {
		if r.Contains(p.Date) {
			res = append(res, p)
		}
	}
	return res
}

// Change summarizes the evolution of a series from its first to its last point.
type Change struct {
	First   float64
	Last    float64
	Amount  float64
	Percent Percent
	Trend   Trend
}

// Change computes the change over s. A series with less than two points is flat.
func (s Series) Change() Change {
	if len(s) == 0 {
		return Change{Trend: Gain}
	}
	first, last := s[0].Value, s[len(s)-1].Value
	amount := last - first
	return Change{
		First:   first,
		Last:    last,
		Amount:  amount,
		Percent: PercentChange(amount, first),
		Trend:   TrendOf(amount),
	}
}
