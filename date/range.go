package date

// Range represents a range of dates.
type Range struct{ From, To Date }

// Trailing returns the range of 'days' days ending on 'to'. The start day is
// to-days, so a 7 days trailing range holds 8 calendar days.
func Trailing(to Date, days int) Range {
	return Range{From: to.Add(-days), To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// String returns the range as "from..to".
func (r Range) String() string { return r.From.String() + ".." + r.To.String() }
