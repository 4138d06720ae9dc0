// SPDX-License-Identifier: MIT

package histogram

import (
	"fmt"

	"github.com/katalvlaran/pixlath/raster"
)

// Analyze returns the normalized level distribution of a single-channel plane.
//
// Implementation:
//   - Stage 1: require a non-nil, single-channel plane.
//   - Stage 2: count pixels per level (samples rounded and clamped to 0..255).
//   - Stage 3: divide every bin by rows·cols.
//
// A zero-area plane yields an all-zero distribution instead of dividing by zero.
// Complexity: O(rows·cols) time, O(256) space.
func Analyze(plane *raster.Image) (Histogram, error) {
	if err := raster.Require(plane, raster.Gray); err != nil {
		return Histogram{}, fmt.Errorf("histogram: Analyze: %w", err)
	}

	return count(plane, 0), nil
}

// AnalyzeChannel returns the distribution of channel ch of a 1- or 3-channel
// image, without splitting it first.
func AnalyzeChannel(img *raster.Image, ch int) (Histogram, error) {
	if img == nil {
		return Histogram{}, fmt.Errorf("histogram: AnalyzeChannel: %w", raster.ErrNilImage)
	}
	if ch < 0 || ch >= img.Channels() {
		return Histogram{}, ErrChannelIndex
	}

	return count(img, ch), nil
}

func count(img *raster.Image, ch int) Histogram {
	var h Histogram
	n := img.Pixels()
	if n == 0 {
		return h
	}
	for r := 0; r < img.Rows(); r++ {
		for c := 0; c < img.Cols(); c++ {
			h[level(img.Sample(r, c, ch))]++
		}
	}
	total := float64(n)
	for i := range h {
		h[i] /= total
	}

	return h
}

// Cumulate returns the prefix sum of h in level order: C[0]=H[0],
// C[i]=C[i-1]+H[i]. Pure, O(256).
func Cumulate(h Histogram) Cumulative {
	var c Cumulative
	c[0] = h[0]
	for i := 1; i < Levels; i++ {
		c[i] = c[i-1] + h[i]
	}

	return c
}
