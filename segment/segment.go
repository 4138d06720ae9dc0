// SPDX-License-Identifier: MIT

package segment

import (
	"fmt"

	"github.com/katalvlaran/pixlath/raster"
)

// Find returns the connected components of pixels whose value equals level.
// Segments are ordered by their first pixel in raster order; pixels within a
// segment are in breadth-first order from that pixel.
//
// To convert an index back to (row, col), use idx / cols and idx % cols.
//
// Time:   O(rows·cols·d), where d = 4 or 8.
// Memory: O(rows·cols) for visited flags and output.
func Find(plane *raster.Image, level float64, conn Connectivity) ([]Segment, error) {
	if err := raster.Require(plane, raster.Gray); err != nil {
		return nil, fmt.Errorf("segment: Find: %w", err)
	}
	offsets := conn.offsets()
	if offsets == nil {
		return nil, fmt.Errorf("segment: Find: %d: %w", conn, ErrConnectivity)
	}

	rows, cols := plane.Rows(), plane.Cols()
	seen := make([]bool, rows*cols)
	member := func(r, c int) bool { return plane.Sample(r, c, 0) == level }

	var segs []Segment
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i0 := r*cols + c
			if seen[i0] || !member(r, c) {
				continue
			}
			// BFS to collect the segment
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ur, uc := queue[qi]/cols, queue[qi]%cols
				for _, d := range offsets {
					vr, vc := ur+d[0], uc+d[1]
					if !plane.InBounds(vr, vc) || !member(vr, vc) {
						continue
					}
					vi := vr*cols + vc
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			segs = append(segs, Segment(queue))
		}
	}

	return segs, nil
}

// Prune returns a copy of plane in which every segment at level smaller than
// minSize pixels is repainted with fill. minSize <= 1 returns an unchanged
// copy.
func Prune(plane *raster.Image, level float64, minSize int, conn Connectivity, fill float64) (*raster.Image, error) {
	segs, err := Find(plane, level, conn)
	if err != nil {
		return nil, err
	}
	out := plane.Clone()
	cols := plane.Cols()
	for _, s := range segs {
		if s.Size() >= minSize {
			continue
		}
		for _, idx := range s {
			out.SetSample(idx/cols, idx%cols, 0, fill)
		}
	}

	return out, nil
}
