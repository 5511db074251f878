package stats

import (
	"math"

	"perlin-noise/pkg/core"
)

// Summary captures the value distribution of a generated map.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize computes min, max, mean and population standard deviation over
// the grid's samples.
func Summarize(g *core.FloatGrid) Summary {
	cells := g.Cells()
	if len(cells) == 0 {
		return Summary{}
	}

	s := Summary{Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, v := range cells {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
	}
	s.Mean = sum / float64(len(cells))

	variance := 0.0
	for _, v := range cells {
		d := v - s.Mean
		variance += d * d
	}
	s.StdDev = math.Sqrt(variance / float64(len(cells)))
	return s
}

// Histogram buckets the samples into bins equal-width bins over [0, 1].
// A sample of exactly 1 lands in the top bin.
func Histogram(g *core.FloatGrid, bins int) []int {
	if bins <= 0 {
		bins = 10
	}
	counts := make([]int, bins)
	for _, v := range g.Cells() {
		i := int(v * float64(bins))
		if i >= bins {
			i = bins - 1
		}
		if i < 0 {
			i = 0
		}
		counts[i]++
	}
	return counts
}
