// SPDX-License-Identifier: MIT

package diffusion

import (
	"fmt"

	"github.com/katalvlaran/pixlath/raster"
)

// Binary dithers every channel of img to {0, 255} independently.
//
// Implementation (per channel, no cross-channel coupling):
//   - Stage 1: copy the channel into a float working plane.
//   - Stage 2: visit interior pixels in raster order; quantize the
//     error-adjusted value v to 255 if v > threshold, else 0.
//   - Stage 3: push weight·(v − q) to each in-bounds tap.
//
// The output is a new image: interior samples are exactly 0 or 255, border
// ring samples equal the input. img is not modified.
// Complexity: O(rows·cols·channels·|kernel|).
func Binary(img *raster.Image, opts ...Option) (*raster.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("diffusion: Binary: %w", raster.ErrNilImage)
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

	residual := make([]float64, 1)
	for ch, work := range img.Split() {
		for r := win.Row0; r < win.Row1; r++ {
			for c := win.Col0; c < win.Col1; c++ {
				v := work.Sample(r, c, 0)
				q := 0.0
				if v > o.threshold {
					q = raster.MaxLevel
				}
				out.SetSample(r, c, ch, q)
				residual[0] = v - q
				diffuse(work, o.kernel, r, c, residual)
			}
		}
	}

	return out, nil
}

// diffuse adds weight·residual to every in-bounds tap around (r,c). The
// residual has one entry per channel of work.
func diffuse(work *raster.Image, k ErrorKernel, r, c int, residual []float64) {
	for _, t := range k {
		nr, nc := r+t.DRow, c+t.DCol
		if !work.InBounds(nr, nc) {
			continue
		}
		for ch, e := range residual {
			work.AddSample(nr, nc, ch, t.Weight*e)
		}
	}
}
