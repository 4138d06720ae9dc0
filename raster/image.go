// SPDX-License-Identifier: MIT

// Package raster - Image storage (row-major, interleaved) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula
//     (r*cols + c)*channels + ch.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer unchecked Sample/SetSample fast paths for the transform packages,
//     which validate shape once before their loops.
//
// Complexity quicksheet:
//   - New: O(r*c*ch) zero-init; At/Set/Sample: O(1); Clone: O(r*c*ch).

package raster

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// Supported channel counts.
const (
	// Gray is the channel count of a single-channel plane.
	Gray = 1
	// Color is the channel count of a three-channel image (RGB or HSV).
	Color = 3
)

// MaxLevel is the largest value of the 8-bit sample domain.
const MaxLevel = 255

// imageErrorf wraps a sentinel with the Image method context and coordinates.
func imageErrorf(method string, row, col, ch int, err error) error {
	return fmt.Errorf("Image.%s(%d,%d,%d): %w", method, row, col, ch, err)
}

// Image is a rows×cols grid of pixels with 1 or 3 channels.
//   - data holds rows*cols*channels samples, pixel-interleaved, row-major.
//   - A zero-area image (rows==0 or cols==0) is legal and has no samples.
type Image struct {
	rows, cols int       // grid shape (>= 0)
	channels   int       // 1 or 3
	data       []float64 // len == rows*cols*channels
}

var _ fmt.Stringer = (*Image)(nil)

// ValidChannels reports whether n is a supported channel count.
func ValidChannels(n int) bool {
	return n == Gray || n == Color
}

// New creates a zero-filled rows×cols image with the given channel count.
// Stage 1 (Validate): rows,cols >= 0 and channels ∈ {1,3}.
// Stage 2 (Prepare): allocate the flat buffer (zero-filled by make).
// Complexity: O(rows*cols*channels) time and memory.
func New(rows, cols, channels int) (*Image, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	if !ValidChannels(channels) {
		return nil, ErrChannelCount
	}

	return &Image{
		rows:     rows,
		cols:     cols,
		channels: channels,
		data:     make([]float64, rows*cols*channels),
	}, nil
}

// FromSamples builds an image from interleaved row-major samples.
// The slice is copied; later changes to samples do not affect the image.
// Returns ErrDimensionMismatch if len(samples) != rows*cols*channels.
func FromSamples(rows, cols, channels int, samples []float64) (*Image, error) {
	img, err := New(rows, cols, channels)
	if err != nil {
		return nil, err
	}
	if len(samples) != len(img.data) {
		return nil, ErrDimensionMismatch
	}
	copy(img.data, samples)

	return img, nil
}

// FromUint8 builds an image from interleaved 8-bit samples, promoting them
// to float64.
func FromUint8(rows, cols, channels int, pix []uint8) (*Image, error) {
	img, err := New(rows, cols, channels)
	if err != nil {
		return nil, err
	}
	if len(pix) != len(img.data) {
		return nil, ErrDimensionMismatch
	}
	for i, p := range pix {
		img.data[i] = float64(p)
	}

	return img, nil
}

// Rows returns the number of rows.
func (m *Image) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Image) Cols() int { return m.cols }

// Channels returns the number of channels (1 or 3).
func (m *Image) Channels() int { return m.channels }

// Pixels returns rows*cols.
func (m *Image) Pixels() int { return m.rows * m.cols }

// Empty reports whether the image has zero area.
func (m *Image) Empty() bool { return m.rows == 0 || m.cols == 0 }

// SameShape reports whether o has the same rows, cols and channels as m.
func (m *Image) SameShape(o *Image) bool {
	return o != nil && m.rows == o.rows && m.cols == o.cols && m.channels == o.channels
}

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (m *Image) InBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// offset computes the flat index of (row,col,ch) without validation.
func (m *Image) offset(row, col, ch int) int {
	return (row*m.cols+col)*m.channels + ch
}

// indexOf computes the flat index for (row,col,ch) or returns ErrOutOfRange.
func (m *Image) indexOf(method string, row, col, ch int) (int, error) {
	if !m.InBounds(row, col) || ch < 0 || ch >= m.channels {
		return 0, imageErrorf(method, row, col, ch, ErrOutOfRange)
	}

	return m.offset(row, col, ch), nil
}

// At retrieves the sample at (row, col, ch).
// Returns a wrapped ErrOutOfRange for invalid indices.
// Complexity: O(1).
func (m *Image) At(row, col, ch int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col, ch)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col, ch).
// Returns a wrapped ErrOutOfRange for invalid indices.
// Complexity: O(1).
func (m *Image) Set(row, col, ch int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col, ch)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Sample is the unchecked counterpart of At. Callers guarantee the indices
// are in range; an invalid index panics like a slice access.
func (m *Image) Sample(row, col, ch int) float64 {
	return m.data[m.offset(row, col, ch)]
}

// SetSample is the unchecked counterpart of Set.
func (m *Image) SetSample(row, col, ch int, v float64) {
	m.data[m.offset(row, col, ch)] = v
}

// AddSample adds d to the sample at (row, col, ch) without bounds checks.
func (m *Image) AddSample(row, col, ch int, d float64) {
	m.data[m.offset(row, col, ch)] += d
}

// Pixel returns a copy of all channel values at (row, col).
func (m *Image) Pixel(row, col int) ([]float64, error) {
	if !m.InBounds(row, col) {
		return nil, imageErrorf(ctxAt, row, col, 0, ErrOutOfRange)
	}
	px := make([]float64, m.channels)
	copy(px, m.data[m.offset(row, col, 0):])

	return px, nil
}

// Samples returns a copy of the interleaved sample buffer.
func (m *Image) Samples() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Fill sets every sample to v.
func (m *Image) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone returns a deep copy; the result shares no storage with m.
// Complexity: O(rows*cols*channels).
func (m *Image) Clone() *Image {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Image{rows: m.rows, cols: m.cols, channels: m.channels, data: data}
}

// Map returns a new image whose samples are fn applied to m's samples.
func (m *Image) Map(fn func(v float64) float64) *Image {
	out := m.Clone()
	for i, v := range out.data {
		out.data[i] = fn(v)
	}

	return out
}

// Saturate returns a copy converted to the 8-bit domain: every sample is
// rounded half-to-even and clamped to [0,255]. NaN becomes 0.
func (m *Image) Saturate() *Image {
	return m.Map(saturate)
}

// Uint8 returns the interleaved samples saturated to 8 bits.
func (m *Image) Uint8() []uint8 {
	out := make([]uint8, len(m.data))
	for i, v := range m.data {
		out[i] = uint8(saturate(v))
	}

	return out
}

// saturate rounds half-to-even and clamps to the 8-bit range.
func saturate(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.RoundToEven(v)
	if v < 0 {
		return 0
	}
	if v > MaxLevel {
		return MaxLevel
	}

	return v
}

// Equal reports whether o has the same shape and every sample differs from
// m's by at most eps.
func (m *Image) Equal(o *Image, eps float64) bool {
	if !m.SameShape(o) {
		return false
	}
	for i, v := range m.data {
		if math.Abs(v-o.data[i]) > eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging: one line per row, pixels
// separated by commas, channels of a pixel joined by '/'.
func (m *Image) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		sb.WriteString("[")
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			for ch := 0; ch < m.channels; ch++ {
				if ch > 0 {
					sb.WriteString("/")
				}
				fmt.Fprintf(&sb, "%g", m.data[m.offset(r, c, ch)])
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Require validates that img is non-nil and has exactly the given channel
// count. Transform packages call it before any computation so that a
// malformed input is reported instead of silently mis-processed.
func Require(img *Image, channels int) error {
	if img == nil {
		return ErrNilImage
	}
	if img.channels != channels {
		return fmt.Errorf("want %d channel(s), got %d: %w", channels, img.channels, ErrChannelCount)
	}

	return nil
}
