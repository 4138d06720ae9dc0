// Package histogram defines the 256-bin value types shared by the analyzer,
// the cumulative pass and the equalizer.
package histogram

import "math"

// Levels is the number of discrete 8-bit levels.
const Levels = 256

// Histogram is a per-level probability distribution. For any non-empty plane
// its bins sum to 1 within floating tolerance; for an empty plane all bins
// are zero.
type Histogram [Levels]float64

// Cumulative is the prefix sum of a Histogram: non-decreasing, C[0]==H[0]
// and C[255]≈1 for non-empty input.
type Cumulative [Levels]float64

// Sum returns the total probability mass.
func (h Histogram) Sum() float64 {
	var s float64
	for _, v := range h {
		s += v
	}

	return s
}

// Max returns the largest bin.
func (h Histogram) Max() float64 { return maxOf(h[:]) }

// Max returns the largest value (the last one for non-empty input).
func (c Cumulative) Max() float64 { return maxOf(c[:]) }

// Lookup returns the level-remapping table round(255·C[level]).
func (c Cumulative) Lookup() [Levels]float64 {
	var lut [Levels]float64
	for i, v := range c {
		lut[i] = math.Round(255 * v)
	}

	return lut
}

func maxOf(v []float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}

	return m
}

// level maps a sample onto its discrete 8-bit level: rounded and clamped.
func level(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	l := int(math.Round(v))
	if l < 0 {
		return 0
	}
	if l > Levels-1 {
		return Levels - 1
	}

	return l
}
