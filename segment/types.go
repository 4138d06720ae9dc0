package segment

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including
// diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the (dRow, dCol) neighbor offsets of c, or nil for an
// unknown value.
func (c Connectivity) offsets() [][2]int {
	switch c {
	case Conn4:
		return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	case Conn8:
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}

	return nil
}

// Segment is one connected component: row-major pixel indices
// (row*cols + col) in discovery order. The first index is the segment's
// top-left-most pixel in raster order.
type Segment []int

// Size returns the number of pixels in s.
func (s Segment) Size() int { return len(s) }
