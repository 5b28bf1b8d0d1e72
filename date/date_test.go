package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-15", want: New(2024, time.January, 15)},
		{in: "2024-1-5", want: New(2024, time.January, 5)},
		{in: "2024-02-01T10:30:00Z", want: New(2024, time.February, 1)},
		{in: "2024-02-01T23:59:59", want: New(2024, time.February, 1)},
		{in: "01/02/2024", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAddSub(t *testing.T) {
	d := New(2024, time.February, 1)
	if got, want := d.Add(-30), New(2024, time.January, 2); got != want {
		t.Errorf("Add(-30) = %v, want %v", got, want)
	}
	if got, want := d.Add(29), New(2024, time.March, 1); got != want {
		t.Errorf("Add(29) = %v, want %v (leap year)", got, want)
	}
	if got := d.Sub(New(2024, time.January, 1)); got != 31 {
		t.Errorf("Sub() = %d, want 31", got)
	}
}

func TestJSON(t *testing.T) {
	var got struct {
		Date Date `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date":"2024-04-01"}`), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if want := New(2024, time.April, 1); got.Date != want {
		t.Errorf("Unmarshal() = %v, want %v", got.Date, want)
	}
	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"date":"2024-04-01"}` {
		t.Errorf("Marshal() = %s", data)
	}
	if err := json.Unmarshal([]byte(`{"date":"yesterday"}`), &got); err == nil {
		t.Errorf("Unmarshal() of an invalid date should fail")
	}
}

func TestRange(t *testing.T) {
	r := Trailing(New(2024, time.February, 1), 30)
	if r.From != New(2024, time.January, 2) {
		t.Errorf("Trailing().From = %v, want 2024-01-02", r.From)
	}
	if !r.Contains(r.From) || !r.Contains(r.To) {
		t.Errorf("Range %v should contain its boundaries", r)
	}
	if r.Contains(New(2024, time.January, 1)) || r.Contains(New(2024, time.February, 2)) {
		t.Errorf("Range %v should not contain days outside", r)
	}
	if got := r.String(); got != "2024-01-02..2024-02-01" {
		t.Errorf("String() = %q", got)
	}
}
