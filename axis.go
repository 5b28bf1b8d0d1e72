package folio

import (
	"math"

	"github.com/montanaflynn/stats"
)

// TickCount is the number of ticks on a Y axis.
const TickCount = 5

// Axis is the Y axis of the performance chart.
type Axis struct {
	Domain [2]float64 // always starts at 0
	Ticks  []float64
}

// NewAxis computes the Y axis for the values in s.
//
// The value range is padded by 10% on each side twice in a row (the lower
// bound never going below 0) and split in TickCount ticks rounded to the
// nearest ten. The domain always starts at 0.
// An empty series gets the [0, 100] domain.
func NewAxis(s Series) Axis {
	if len(s) == 0 {
		return Axis{Domain: [2]float64{0, 100}, Ticks: []float64{0, 25, 50, 75, 100}}
	}

	values := s.Values()
	minY, _ := stats.Min(values)
	maxY, _ := stats.Max(values)

	buffer := (maxY - minY) * 0.1
	minY = math.Floor(minY - buffer)
	maxY = math.Ceil(maxY + buffer)

	buffer = (maxY - minY) * 0.1
	minY = math.Max(math.Floor(minY-buffer), 0)
	maxY = math.Ceil(maxY + buffer)

	step := math.Ceil((maxY - minY) / (TickCount - 1))
	ticks := make([]float64, TickCount)
	for i := range ticks {
		ticks[i] = roundTen(minY + float64(i)*step)
	}
	return Axis{Domain: [2]float64{0, maxY}, Ticks: ticks}
}

// roundTen rounds x to the nearest multiple of ten, halves going up.
func roundTen(x float64) float64 { return math.Floor(x/10+0.5) * 10 }
