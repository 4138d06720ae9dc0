// SPDX-License-Identifier: MIT

package histogram

import (
	"github.com/katalvlaran/pixlath/raster"
)

// Chart geometry: one column per level for each curve, side by side.
const (
	ChartRows = 256
	ChartCols = 2 * Levels
)

// Render draws h (left half) and c (right half) as black bars on a white
// 256×512 single-channel chart. Each curve is scaled so its maximum reaches
// the top row; an all-zero curve draws nothing.
func Render(h Histogram, c Cumulative) *raster.Image {
	img, _ := raster.New(ChartRows, ChartCols, raster.Gray)
	img.Fill(raster.MaxLevel)
	drawBars(img, h[:], h.Max(), 0)
	drawBars(img, c[:], c.Max(), Levels)

	return img
}

func drawBars(img *raster.Image, v []float64, peak float64, col0 int) {
	if peak <= 0 {
		return
	}
	for i, x := range v {
		height := x * ChartRows / peak
		for j := 0; float64(j) < height && j < ChartRows; j++ {
			img.SetSample(ChartRows-1-j, col0+i, 0, 0)
		}
	}
}
