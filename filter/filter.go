// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pixlath/raster"
)

// Binomial is the 3×3 smoothing kernel (1 2 1 / 2 4 2 / 1 2 1)/16.
var Binomial = raster.Kernel{
	{1.0 / 16, 2.0 / 16, 1.0 / 16},
	{2.0 / 16, 4.0 / 16, 2.0 / 16},
	{1.0 / 16, 2.0 / 16, 1.0 / 16},
}

// Mean smooths img with the Binomial kernel.
// Complexity: O(9·rows·cols·channels).
func Mean(img *raster.Image) (*raster.Image, error) {
	out, err := raster.Correlate(img, Binomial, 0)
	if err != nil {
		return nil, fmt.Errorf("filter: Mean: %w", err)
	}

	return out, nil
}

// SharpenKernel returns Identity − alpha·Laplacian. alpha is unbounded;
// negative values blur instead of sharpening.
func SharpenKernel(alpha float64) raster.Kernel {
	return raster.Identity.Sub(raster.Laplacian.Scale(alpha))
}

// Sharpen enhances contrast by subtracting alpha times the Laplacian. The
// result is signed and unclamped: it is also the plane whose sign changes
// mark zero-crossings in edge detection.
func Sharpen(img *raster.Image, alpha float64) (*raster.Image, error) {
	out, err := raster.Correlate(img, SharpenKernel(alpha), 0)
	if err != nil {
		return nil, fmt.Errorf("filter: Sharpen: %w", err)
	}

	return out, nil
}

// Median replaces each sample by the median of its 3×3 neighborhood, edge
// pixels replicated outward.
// Complexity: O(rows·cols·channels·9·log 9).
func Median(img *raster.Image) (*raster.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("filter: Median: %w", raster.ErrNilImage)
	}
	out := img.Clone()
	rows, cols := img.Rows(), img.Cols()
	win := make([]float64, 0, 9)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			for ch := 0; ch < img.Channels(); ch++ {
				win = win[:0]
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						win = append(win, img.Sample(clamp(r+dr, rows), clamp(c+dc, cols), ch))
					}
				}
				sort.Float64s(win)
				out.SetSample(r, c, ch, win[4])
			}
		}
	}

	return out, nil
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}

	return i
}
