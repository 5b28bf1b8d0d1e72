package folio

import (
	"errors"
	"reflect"
	"testing"

	"github.com/etnz/folio/date"
)

func TestFilter(t *testing.T) {
	series := Series{P("2024-01-01", 100), P("2024-01-15", 120), P("2024-02-01", 150)}

	tests := []struct {
		name   string
		series Series
		window Window
		want   Series
	}{
		{
			name:   "30 days anchored on the last date",
			series: series,
			window: Month,
			want:   Series{P("2024-01-15", 120), P("2024-02-01", 150)},
		},
		{
			name:   "7 days keeps the last point only",
			series: series,
			window: Week,
			want:   Series{P("2024-02-01", 150)},
		},
		{
			name:   "window larger than the data",
			series: series,
			window: Year,
			want:   series,
		},
		{
			name:   "cutoff day is included",
			series: Series{P("2024-01-02", 90), P("2024-02-01", 150)},
			window: Month,
			want:   Series{P("2024-01-02", 90), P("2024-02-01", 150)},
		},
		{
			name:   "empty series",
			series: Series{},
			window: Quarter,
			want:   Series{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.series, tt.window)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%v) = %v, want %v", tt.window, got, tt.want)
			}
		})
	}
}

func TestFilter_AllReturnsInput(t *testing.T) {
	s := daily("2023-01-01", 400, func(i int) float64 { return float64(i) })
	got := Filter(s, All)
	if len(got) != len(s) || &got[0] != &s[0] {
		t.Errorf("Filter(All) should return the input unchanged")
	}
}

func TestFilter_DoesNotMutate(t *testing.T) {
	s := daily("2024-01-01", 60, func(i int) float64 { return 10 * float64(i) })
	orig := append(Series(nil), s...)
	got := Filter(s, Month)
	got[0].Value = -1
	if !reflect.DeepEqual(s, orig) {
		t.Errorf("Filter() mutated its input")
	}
}

// TestFilter_Window checks that exactly the points within the window are kept, for every window.
func TestFilter_Window(t *testing.T) {
	// a sparse series: every third day over more than a year
	s := make(Series, 0)
	start := date.MustParse("2023-03-10")
	for i := 0; i < 500; i += 3 {
		s = append(s, Point{Date: start.Add(i), Value: float64(i)})
	}
	last := s[len(s)-1].Date

	for _, w := range []Window{Week, Month, Quarter, Year} {
		t.Run(w.String(), func(t *testing.T) {
			days, _ := w.Days()
			cutoff := last.Add(-days)
			got := Filter(s, w)

			kept := make(map[date.Date]bool)
			for _, p := range got {
				kept[p.Date] = true
				if p.Date.Before(cutoff) {
					t.Errorf("kept %v before cutoff %v", p.Date, cutoff)
				}
			}
			for _, p := range s {
				if !p.Date.Before(cutoff) && !kept[p.Date] {
					t.Errorf("dropped %v within the window", p.Date)
				}
			}
			if again := Filter(got, w); !reflect.DeepEqual(again, got) {
				t.Errorf("Filter() is not idempotent: %v then %v", got, again)
			}
		})
	}
}

func TestSeries_Change(t *testing.T) {
	tests := []struct {
		name   string
		series Series
		want   Change
	}{
		{
			name:   "gain",
			series: Series{P("2024-01-01", 100), P("2024-01-02", 90), P("2024-01-03", 150)},
			want:   Change{First: 100, Last: 150, Amount: 50, Percent: 50, Trend: Gain},
		},
		{
			name:   "loss",
			series: Series{P("2024-01-01", 200), P("2024-01-03", 150)},
			want:   Change{First: 200, Last: 150, Amount: -50, Percent: -25, Trend: Loss},
		},
		{
			name:   "from zero",
			series: Series{P("2024-01-01", 0), P("2024-01-03", 150)},
			want:   Change{First: 0, Last: 150, Amount: 150, Percent: 0, Trend: Gain},
		},
		{
			name:   "single point is flat",
			series: Series{P("2024-01-01", 42)},
			want:   Change{First: 42, Last: 42, Trend: Gain},
		},
		{
			name:   "empty",
			series: nil,
			want:   Change{Trend: Gain},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.series.Change(); got != tt.want {
				t.Errorf("Change() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSeries_Validate(t *testing.T) {
	tests := []struct {
		name    string
		series  Series
		wantErr bool
	}{
		{"valid", Series{P("2024-01-01", 0), P("2024-01-02", 10)}, false},
		{"empty", Series{}, false},
		{"missing date", Series{{Value: 10}}, true},
		{"negative", Series{P("2024-01-01", -1)}, true},
		{"not sorted", Series{P("2024-01-02", 1), P("2024-01-01", 1)}, true},
		{"duplicate", Series{P("2024-01-01", 1), P("2024-01-01", 1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.series.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMalformed) {
				t.Errorf("Validate() error %v should wrap ErrMalformed", err)
			}
		})
	}
}

func TestParseWindow(t *testing.T) {
	tests := map[string]Window{
		"7d": Week, "1W": Week, "30d": Month, "1m": Month, "90d": Quarter, "3M": Quarter,
		"365d": Year, "1y": Year, "all": All, "max": All, "nd": All, " 5y ": All,
	}
	for in, want := range tests {
		got, err := ParseWindow(in)
		if err != nil || got != want {
			t.Errorf("ParseWindow(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseWindow("2w"); err == nil {
		t.Errorf("ParseWindow(%q) should fail", "2w")
	}

	var w Window
	if err := w.Set("1y"); err != nil || w != Year {
		t.Errorf("Set(1y) = %v, %v", w, err)
	}
	if got := Quarter.Label(); got != "past 3 months" {
		t.Errorf("Label() = %q", got)
	}
}
