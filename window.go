package folio

import (
	"fmt"
	"strings"
)

// Window selects the trailing part of a valuation series to display.
type Window string

const (
	Week    Window = "7d"
	Month   Window = "30d"
	Quarter Window = "90d"
	Year    Window = "365d"
	All     Window = "all"
)

// DefaultWindow is the window selected when nothing else is asked for.
const DefaultWindow = Quarter

// Windows lists all valid windows, shortest first.
var Windows = []Window{Week, Month, Quarter, Year, All}

var windowDays = map[Window]int{
	Week:    7,
	Month:   30,
	Quarter: 90,
	Year:    365,
}

// Days returns the number of days covered by w. ok is false for All and for
// unknown windows.
func (w Window) Days() (days int, ok bool) {
	days, ok = windowDays[w]
	return
}

// Label returns a human description of the window.
func (w Window) Label() string {
	switch w {
	case Week:
		return "past 1 week"
	case Month:
		return "past 1 month"
	case Quarter:
		return "past 3 months"
	case Year:
		return "past year"
	case All:
		return "since inception"
	default:
		return string(w)
	}
}

func (w Window) String() string { return string(w) }

// Set implements flag.Value.
func (w *Window) Set(s string) error {
	v, err := ParseWindow(s)
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// ParseWindow parses a window name. Besides the canonical names it accepts
// the toggle labels used by the charts (1w, 1m, 3m, 1y, max).
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "7d", "1w", "week":
		return Week, nil
	case "30d", "1m", "month":
		return Month, nil
	case "90d", "3m", "quarter":
		return Quarter, nil
	case "365d", "1y", "year":
		return Year, nil
	case "all", "max", "nd", "5y":
		return All, nil
	default:
		return "", fmt.Errorf("unknown window %q, want one of %v", s, Windows)
	}
}
