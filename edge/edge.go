// SPDX-License-Identifier: MIT

package edge

import (
	"fmt"

	"github.com/katalvlaran/pixlath/filter"
	"github.com/katalvlaran/pixlath/gradient"
	"github.com/katalvlaran/pixlath/raster"
)

// Output levels of MarrHildreth.
const (
	Edge       = 0.0
	Background = 255.0
)

// Map holds the intermediate planes shared by edge classification and
// stroke rendering.
type Map struct {
	Sharpened *raster.Image   // Identity − alpha·Laplacian, signed
	Gradient  *gradient.Field // unbiased derivatives and magnitude
}

// Prepare builds the sharpened plane and the gradient field of a
// single-channel image. alpha is unbounded.
// Complexity: O(rows·cols).
func Prepare(img *raster.Image, alpha float64) (*Map, error) {
	if err := raster.Require(img, raster.Gray); err != nil {
		return nil, fmt.Errorf("edge: Prepare: %w", err)
	}
	sharp, err := filter.Sharpen(img, alpha)
	if err != nil {
		return nil, fmt.Errorf("edge: Prepare: %w", err)
	}
	field, err := gradient.Compute(img)
	if err != nil {
		return nil, fmt.Errorf("edge: Prepare: %w", err)
	}

	return &Map{Sharpened: sharp, Gradient: field}, nil
}

// ZeroCrossing reports whether the 3×3 window of plane centered on (row,col)
// contains both a negative and a non-negative sample. The window is clipped
// to the image, so border pixels never read out of range.
func ZeroCrossing(plane *raster.Image, row, col int) bool {
	var neg, nonNeg bool
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if !plane.InBounds(r, c) {
				continue
			}
			if plane.Sample(r, c, 0) < 0 {
				neg = true
			} else {
				nonNeg = true
			}
			if neg && nonNeg {
				return true
			}
		}
	}

	return false
}

// IsEdge applies both edge tests at (row, col).
func (m *Map) IsEdge(row, col int, threshold float64) bool {
	return m.Gradient.Magnitude.Sample(row, col, 0) >= threshold &&
		ZeroCrossing(m.Sharpened, row, col)
}

// MarrHildreth classifies every interior pixel of a single-channel image.
//
// Stage 1 (Prepare): sharpened plane and gradient field.
// Stage 2 (Classify): interior pixels become Edge or Background; the border
// ring is copied from img.
//
// Complexity: O(rows·cols).
func MarrHildreth(img *raster.Image, threshold, alpha float64) (*raster.Image, error) {
	m, err := Prepare(img, alpha)
	if err != nil {
		return nil, fmt.Errorf("edge: MarrHildreth: %w", err)
	}
	out := img.Clone()
	w := img.InteriorWindow(raster.DefaultMargin)
	for r := w.Row0; r < w.Row1; r++ {
		for c := w.Col0; c < w.Col1; c++ {
			v := Background
			if m.IsEdge(r, c, threshold) {
				v = Edge
			}
			out.SetSample(r, c, 0, v)
		}
	}

	return out, nil
}
