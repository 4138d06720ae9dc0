// SPDX-License-Identifier: MIT

// Package raster - 3×3 kernels and linear filtering.
//
// Correlate follows the usual image-filtering convention: the kernel is NOT
// flipped (correlation, not convolution), k[1][1] weights the current pixel,
// k[0][*] the row above. Samples outside the image are read through a
// reflect-101 border (…, 2, 1 | 0, 1, 2, … | n-2, n-3, …), so every output
// pixel, including the border ring, receives a defined value.

package raster

import "fmt"

// Kernel is a 3×3 filter, indexed [row offset+1][col offset+1].
type Kernel [3][3]float64

var (
	// Identity leaves an image unchanged under Correlate.
	Identity = Kernel{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}

	// Laplacian is the 4-neighbor discrete Laplacian.
	Laplacian = Kernel{
		{0, 1, 0},
		{1, -4, 1},
		{0, 1, 0},
	}
)

// Scale returns k with every weight multiplied by a.
func (k Kernel) Scale(a float64) Kernel {
	var out Kernel
	for i := range k {
		for j := range k[i] {
			out[i][j] = k[i][j] * a
		}
	}

	return out
}

// Sub returns k − o element-wise.
func (k Kernel) Sub(o Kernel) Kernel {
	var out Kernel
	for i := range k {
		for j := range k[i] {
			out[i][j] = k[i][j] - o[i][j]
		}
	}

	return out
}

// Sum returns the sum of all weights.
func (k Kernel) Sum() float64 {
	var s float64
	for i := range k {
		for j := range k[i] {
			s += k[i][j]
		}
	}

	return s
}

// Reflect101 maps an index that may fall one or more steps outside [0,n)
// back inside by mirroring around the edge sample without repeating it.
// n must be positive.
func Reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		} else {
			i = 2*n - 2 - i
		}
	}

	return i
}

// Correlate filters every channel of img with k and adds bias to each result.
// The input is not modified; a new image of the same shape is returned.
// A zero-area image yields a zero-area result.
// Complexity: O(9·rows·cols·channels).
func Correlate(img *Image, k Kernel, bias float64) (*Image, error) {
	if img == nil {
		return nil, fmt.Errorf("Correlate: %w", ErrNilImage)
	}
	out, err := New(img.rows, img.cols, img.channels)
	if err != nil {
		return nil, err
	}
	if img.Empty() {
		return out, nil
	}

	for r := 0; r < img.rows; r++ {
		var rows [3]int
		for dr := -1; dr <= 1; dr++ {
			rows[dr+1] = Reflect101(r+dr, img.rows)
		}
		for c := 0; c < img.cols; c++ {
			var cols [3]int
			for dc := -1; dc <= 1; dc++ {
				cols[dc+1] = Reflect101(c+dc, img.cols)
			}
			for ch := 0; ch < img.channels; ch++ {
				acc := bias
				for i := 0; i < 3; i++ {
					for j := 0; j < 3; j++ {
						if k[i][j] == 0 {
							continue
						}
						acc += k[i][j] * img.data[img.offset(rows[i], cols[j], ch)]
					}
				}
				out.data[out.offset(r, c, ch)] = acc
			}
		}
	}

	return out, nil
}
