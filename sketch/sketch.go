// SPDX-License-Identifier: MIT

package sketch

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pixlath/edge"
	"github.com/katalvlaran/pixlath/raster"
)

// Ink is the stroke level; Paper is the level of every other interior pixel.
const (
	Ink   = 0.0
	Paper = 255.0
)

// Params are the stroke controls. None is range-checked: negative or large
// values give different but well-defined pictures.
type Params struct {
	Threshold  float64 // minimum gradient magnitude of a qualifying pixel
	Alpha      float64 // sharpening strength of the zero-crossing plane
	Proportion float64 // stroke probability in percent (0..100)
	Length     float64 // stroke length scale in percent
}

// Render draws the sketch of a single-channel image.
//
// Stage 1 (Prepare): sharpened plane and gradient field (edge.Prepare).
// Stage 2 (Stroke): visit interior pixels in raster order; for a qualifying
// pixel with u < Proportion/100, stamp a segment centered on it with angle
// atan2(−col, row) + π/2 + jitter·(u'−0.5) and half-length
// (magnitude/255)·(Length/100); otherwise paint the pixel Paper.
//
// Strokes are clipped to the image, so any Length, including ±Inf, costs at
// most O(rows+cols) per stroke. A NaN Length stamps single-pixel strokes.
//
// Complexity: O(rows·cols·(rows+cols)) worst case.
func Render(img *raster.Image, p Params, opts ...Option) (*raster.Image, error) {
	m, err := edge.Prepare(img, p.Alpha)
	if err != nil {
		return nil, fmt.Errorf("sketch: Render: %w", err)
	}
	o := gatherOptions(opts...)

	out := img.Clone()
	chance := p.Proportion / 100
	reach := float64(img.Rows() + img.Cols())
	w := img.InteriorWindow(raster.DefaultMargin)
	for r := w.Row0; r < w.Row1; r++ {
		for c := w.Col0; c < w.Col1; c++ {
			if m.IsEdge(r, c, p.Threshold) && o.src.Float64() < chance {
				theta := math.Atan2(-float64(c), float64(r)) + math.Pi/2 + o.jitter*(o.src.Float64()-0.5)
				half := m.Gradient.Magnitude.Sample(r, c, 0) / 255 * (p.Length / 100)
				// Past reach both ends leave the image, so the clipped stroke is the same.
				half = math.Max(-reach, math.Min(reach, half))
				if math.IsNaN(half) {
					half = 0
				}
				dc, dr := half*math.Cos(theta), half*math.Sin(theta)
				stroke(out, float64(r)+dr, float64(c)+dc, float64(r)-dr, float64(c)-dc, Ink)

				continue
			}
			out.SetSample(r, c, 0, Paper)
		}
	}

	return out, nil
}

