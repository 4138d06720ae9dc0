// SPDX-License-Identifier: MIT

package colorspace

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/pixlath/raster"
)

// Luma weights of Gray (ITU-R BT.601).
const (
	WeightR = 0.299
	WeightG = 0.587
	WeightB = 0.114
)

// hueScale maps degrees onto the 0..255 sample domain.
const hueScale = raster.MaxLevel / 360.0

// Channel indices of an HSV image.
const (
	Hue = iota
	Saturation
	Value
)

// Gray converts an RGB image to a single-channel luma plane.
// Complexity: O(rows·cols).
func Gray(img *raster.Image) (*raster.Image, error) {
	if err := raster.Require(img, raster.Color); err != nil {
		return nil, fmt.Errorf("colorspace: Gray: %w", err)
	}
	out, err := raster.New(img.Rows(), img.Cols(), raster.Gray)
	if err != nil {
		return nil, err
	}
	for r := 0; r < img.Rows(); r++ {
		for c := 0; c < img.Cols(); c++ {
			out.SetSample(r, c, 0,
				WeightR*img.Sample(r, c, 0)+WeightG*img.Sample(r, c, 1)+WeightB*img.Sample(r, c, 2))
		}
	}

	return out, nil
}

// ToHSV converts RGB samples to H, S, V planes scaled to 0..255.
func ToHSV(img *raster.Image) (*raster.Image, error) {
	if err := raster.Require(img, raster.Color); err != nil {
		return nil, fmt.Errorf("colorspace: ToHSV: %w", err)
	}

	return convert(img, func(a, b, c float64) (float64, float64, float64) {
		h, s, v := colorful.Color{R: a / raster.MaxLevel, G: b / raster.MaxLevel, B: c / raster.MaxLevel}.Hsv()

		return h * hueScale, s * raster.MaxLevel, v * raster.MaxLevel
	}), nil
}

// FromHSV is the inverse of ToHSV.
func FromHSV(img *raster.Image) (*raster.Image, error) {
	if err := raster.Require(img, raster.Color); err != nil {
		return nil, fmt.Errorf("colorspace: FromHSV: %w", err)
	}

	return convert(img, func(h, s, v float64) (float64, float64, float64) {
		col := colorful.Hsv(h/hueScale, s/raster.MaxLevel, v/raster.MaxLevel)

		return col.R * raster.MaxLevel, col.G * raster.MaxLevel, col.B * raster.MaxLevel
	}), nil
}

func convert(img *raster.Image, fn func(a, b, c float64) (float64, float64, float64)) *raster.Image {
	out := img.Clone()
	for r := 0; r < img.Rows(); r++ {
		for c := 0; c < img.Cols(); c++ {
			x, y, z := fn(img.Sample(r, c, 0), img.Sample(r, c, 1), img.Sample(r, c, 2))
			out.SetSample(r, c, 0, x)
			out.SetSample(r, c, 1, y)
			out.SetSample(r, c, 2, z)
		}
	}

	return out
}
