// SPDX-License-Identifier: MIT

package sketch

import (
	"math"

	"github.com/katalvlaran/pixlath/raster"
)

// Line sets every channel of the pixels on the 8-connected segment from
// (r0,c0) to (r1,c1) to v, both endpoints included. The segment is clipped
// to img first, so a segment may start or end far off the grid and the walk
// still visits only O(rows+cols) points.
// Complexity: O(min(max(|r1−r0|, |c1−c0|), rows+cols)).
func Line(img *raster.Image, r0, c0, r1, c1 int, v float64) {
	stroke(img, float64(r0), float64(c0), float64(r1), float64(c1), v)
}

// stroke clips the real segment (r0,c0)–(r1,c1) to the pixel-center box
// [−0.5, rows−0.5] × [−0.5, cols−0.5], rounds the clipped endpoints half to
// even and draws the Bresenham segment between them. Endpoints that already
// round onto the grid are kept as they are.
func stroke(img *raster.Image, r0, c0, r1, c1, v float64) {
	if img.Empty() {
		return
	}
	r0, c0, r1, c1, ok := clip(r0, c0, r1, c1, float64(img.Rows())-0.5, float64(img.Cols())-0.5)
	if !ok {
		return
	}
	bresenham(img, round(r0), round(c0), round(r1), round(c1), v)
}

// clip is Liang–Barsky against [−0.5, rmax] × [−0.5, cmax]. It reports false
// when the segment misses the box or has a non-finite coordinate.
func clip(r0, c0, r1, c1, rmax, cmax float64) (float64, float64, float64, float64, bool) {
	for _, x := range [...]float64{r0, c0, r1, c1} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, 0, 0, 0, false
		}
	}
	dr, dc := r1-r0, c1-c0
	t0, t1 := 0.0, 1.0
	edges := [...]struct{ p, q float64 }{
		{-dc, c0 + 0.5},
		{dc, cmax - c0},
		{-dr, r0 + 0.5},
		{dr, rmax - r0},
	}
	for _, e := range edges {
		if e.p == 0 {
			if e.q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := e.q / e.p
		if e.p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	if t1 < 1 {
		r1, c1 = r0+t1*dr, c0+t1*dc
	}
	if t0 > 0 {
		r0, c0 = r0+t0*dr, c0+t0*dc
	}

	return r0, c0, r1, c1, true
}

func bresenham(img *raster.Image, r0, c0, r1, c1 int, v float64) {
	dc, sc := abs(c1-c0), sign(c1-c0)
	dr, sr := -abs(r1-r0), sign(r1-r0)
	e := dc + dr
	for {
		if img.InBounds(r0, c0) {
			for ch := 0; ch < img.Channels(); ch++ {
				img.SetSample(r0, c0, ch, v)
			}
		}
		if r0 == r1 && c0 == c1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

func round(v float64) int { return int(math.RoundToEven(v)) }

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}

	return 0
}
