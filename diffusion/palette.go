// SPDX-License-Identifier: MIT

package diffusion

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a point of the normalized 3-channel space, each component in
// 0.0..1.0 and in the same channel order as the images it is used with.
type Color [3]float64

// Palette is an ordered, non-empty list of admissible output colors. Order
// matters only for ties: the first color at minimal distance wins.
type Palette []Color

// Additive returns the primary-plus-black-and-white preset in RGB order:
// red, green, blue, black, white.
func Additive() Palette {
	return Palette{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
		{1, 1, 1},
	}
}

// Subtractive returns the cyan/magenta/yellow/black/white preset in RGB order.
func Subtractive() Palette {
	return Palette{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
		{0, 0, 0},
		{1, 1, 1},
	}
}

// Presets maps preset names to their constructors.
var Presets = map[string]func() Palette{
	"additive":    Additive,
	"subtractive": Subtractive,
}

// Validate returns ErrEmptyPalette for an empty palette and ErrPaletteColor
// for an entry with a NaN or infinite component.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPalette
	}
	for i, c := range p {
		for _, v := range c {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("color %d %v: %w", i, c, ErrPaletteColor)
			}
		}
	}

	return nil
}

// Colors converts the palette to 8-bit RGBA colors for interop with
// image/color consumers. Components are scaled by 255 and rounded.
func (p Palette) Colors() color.Palette {
	out := make(color.Palette, len(p))
	for i, c := range p {
		out[i] = color.RGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: 0xff}
	}

	return out
}

func to8(v float64) uint8 {
	v = math.Round(v * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}

	return uint8(v)
}

// distance2 is the squared Euclidean distance between a and b.
func distance2(a, b Color) float64 {
	d0, d1, d2 := a[0]-b[0], a[1]-b[1], a[2]-b[2]

	return d0*d0 + d1*d1 + d2*d2
}

// Nearest returns the index of the palette color closest to c in Euclidean
// distance; ties go to the earliest entry. Returns -1 for an empty palette.
// Complexity: O(|p|).
func Nearest(p Palette, c Color) int {
	best, bestDist := -1, math.Inf(1)
	for i, q := range p {
		if d := distance2(c, q); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}
