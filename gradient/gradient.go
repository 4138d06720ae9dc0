// SPDX-License-Identifier: MIT

package gradient

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pixlath/raster"
)

// Field bundles the signed derivatives of a plane and their magnitude.
// All three planes have the shape of the input.
type Field struct {
	X         *raster.Image // horizontal derivative, zero bias
	Y         *raster.Image // vertical derivative, zero bias
	Magnitude *raster.Image // sqrt(X²+Y²) for rows >= 1, input values on row 0; not clamped to 255
}

// Horizontal returns the SobelX response of a single-channel plane plus the
// configured bias.
func Horizontal(img *raster.Image, opts ...Option) (*raster.Image, error) {
	return directional("Horizontal", img, SobelX, opts)
}

// Vertical returns the SobelY response of a single-channel plane plus the
// configured bias.
func Vertical(img *raster.Image, opts ...Option) (*raster.Image, error) {
	return directional("Vertical", img, SobelY, opts)
}

func directional(method string, img *raster.Image, k raster.Kernel, opts []Option) (*raster.Image, error) {
	if err := raster.Require(img, raster.Gray); err != nil {
		return nil, fmt.Errorf("gradient: %s: %w", method, err)
	}
	o := gatherOptions(opts...)
	out, err := raster.Correlate(img, k, o.bias)
	if err != nil {
		return nil, fmt.Errorf("gradient: %s: %w", method, err)
	}

	return out, nil
}

// Compute builds the gradient Field of a single-channel plane.
//
// Stage 1 (Validate): img must be a non-nil single-channel plane.
// Stage 2 (Derivatives): correlate with SobelX and SobelY, zero bias.
// Stage 3 (Magnitude): row 0 copies the input; every later sample is the
// Euclidean norm of the two derivatives.
//
// Complexity: O(rows·cols).
func Compute(img *raster.Image) (*Field, error) {
	if err := raster.Require(img, raster.Gray); err != nil {
		return nil, fmt.Errorf("gradient: Compute: %w", err)
	}
	gx, err := raster.Correlate(img, SobelX, 0)
	if err != nil {
		return nil, fmt.Errorf("gradient: Compute: %w", err)
	}
	gy, err := raster.Correlate(img, SobelY, 0)
	if err != nil {
		return nil, fmt.Errorf("gradient: Compute: %w", err)
	}

	mag := img.Clone()
	for r := 1; r < img.Rows(); r++ {
		for c := 0; c < img.Cols(); c++ {
			mag.SetSample(r, c, 0, math.Hypot(gx.Sample(r, c, 0), gy.Sample(r, c, 0)))
		}
	}

	return &Field{X: gx, Y: gy, Magnitude: mag}, nil
}

// Direction returns atan2(Y, X) at (row, col) in radians.
func (f *Field) Direction(row, col int) float64 {
	return math.Atan2(f.Y.Sample(row, col, 0), f.X.Sample(row, col, 0))
}
