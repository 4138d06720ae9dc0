// SPDX-License-Identifier: MIT

package diffusion

import (
	"fmt"

	"github.com/katalvlaran/pixlath/raster"
)

// ToPalette dithers a 3-channel image against p. One nearest-color decision
// per pixel drives a single correlated error vector, diffused jointly to all
// channels of each tap.
//
// Implementation:
//   - Stage 1: validate channels (3), palette (non-empty, finite) and kernel.
//   - Stage 2: normalize samples to 0..1 in a working copy.
//   - Stage 3: visit interior pixels in raster order: pick Nearest, write
//     255·color to the output, diffuse (value − color) to in-bounds taps.
//
// Every interior output pixel equals 255·p[i] for some i; the border ring
// keeps the input. img is not modified.
// Complexity: O(rows·cols·(|p|+|kernel|)).
func ToPalette(img *raster.Image, p Palette, opts ...Option) (*raster.Image, error) {
	if err := raster.Require(img, raster.Color); err != nil {
		return nil, fmt.Errorf("diffusion: ToPalette: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	if err := o.kernel.Validate(); err != nil {
		return nil, err
	}

	out := img.Clone()
	win := img.InteriorWindow(o.margin)
	if win.Empty() {
		return out, nil
	}

	work := img.Map(func(v float64) float64 { return v / raster.MaxLevel })
	residual := make([]float64, raster.Color)
	for r := win.Row0; r < win.Row1; r++ {
		for c := win.Col0; c < win.Col1; c++ {
			var px Color
			for ch := range px {
				px[ch] = work.Sample(r, c, ch)
			}
			i := Nearest(p, px)
			if i < 0 {
				// NaN sample: every distance compares false.
				i = 0
			}
			chosen := p[i]
			for ch := range px {
				out.SetSample(r, c, ch, chosen[ch]*raster.MaxLevel)
				residual[ch] = px[ch] - chosen[ch]
			}
			diffuse(work, o.kernel, r, c, residual)
		}
	}

	return out, nil
}
