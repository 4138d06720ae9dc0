// SPDX-License-Identifier: MIT

package raster

// DefaultMargin is the width of the border ring that sequential and
// neighborhood transforms leave untouched: the outermost row and column on
// every side are never visited as the current pixel.
const DefaultMargin = 1

// Interior reports whether (row,col) lies inside the image once a ring of
// width margin is excluded on every side. With margin 0 every in-bounds
// pixel is interior; with margin 1 the outermost ring is excluded, so a
// 1×N or 2×N image has no interior at all.
// Complexity: O(1).
func (m *Image) Interior(row, col, margin int) bool {
	return row >= margin && row < m.rows-margin &&
		col >= margin && col < m.cols-margin
}

// Window is a half-open rectangle of visited rows and columns.
type Window struct {
	Row0, Row1 int // rows in [Row0, Row1)
	Col0, Col1 int // cols in [Col0, Col1)
}

// Empty reports whether the window visits no pixel.
func (w Window) Empty() bool { return w.Row0 >= w.Row1 || w.Col0 >= w.Col1 }

// InteriorWindow returns the rectangle of pixels for which Interior(row,
// col, margin) holds. Loops written as
//
//	for r := w.Row0; r < w.Row1; r++ { for c := w.Col0; c < w.Col1; c++ { ... } }
//
// visit exactly the interior in raster order.
func (m *Image) InteriorWindow(margin int) Window {
	return Window{Row0: margin, Row1: m.rows - margin, Col0: margin, Col1: m.cols - margin}
}
