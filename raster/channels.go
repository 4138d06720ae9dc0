// SPDX-License-Identifier: MIT

package raster

// Split returns one single-channel plane per channel of m, in channel order.
// Each plane owns its storage. Splitting a 1-channel image yields a single
// clone.
// Complexity: O(rows*cols*channels).
func (m *Image) Split() []*Image {
	planes := make([]*Image, m.channels)
	n := m.rows * m.cols
	for ch := 0; ch < m.channels; ch++ {
		p := &Image{rows: m.rows, cols: m.cols, channels: Gray, data: make([]float64, n)}
		for i := 0; i < n; i++ {
			p.data[i] = m.data[i*m.channels+ch]
		}
		planes[ch] = p
	}

	return planes
}

// Merge interleaves single-channel planes back into one image, keeping the
// argument order as channel order. It is the inverse of Split.
//
// Errors:
//   - ErrNilImage if any plane is nil.
//   - ErrChannelCount if len(planes) ∉ {1,3} or a plane is not single-channel.
//   - ErrDimensionMismatch if plane sizes differ.
func Merge(planes ...*Image) (*Image, error) {
	if !ValidChannels(len(planes)) {
		return nil, ErrChannelCount
	}
	for _, p := range planes {
		if p == nil {
			return nil, ErrNilImage
		}
		if p.channels != Gray {
			return nil, ErrChannelCount
		}
	}
	rows, cols := planes[0].rows, planes[0].cols
	for _, p := range planes[1:] {
		if p.rows != rows || p.cols != cols {
			return nil, ErrDimensionMismatch
		}
	}

	out, err := New(rows, cols, len(planes))
	if err != nil {
		return nil, err
	}
	for ch, p := range planes {
		for i, v := range p.data {
			out.data[i*out.channels+ch] = v
		}
	}

	return out, nil
}

// Channel returns a copy of a single channel as a plane.
// Returns a wrapped ErrOutOfRange if ch is not a valid channel index.
func (m *Image) Channel(ch int) (*Image, error) {
	if ch < 0 || ch >= m.channels {
		return nil, imageErrorf("Channel", 0, 0, ch, ErrOutOfRange)
	}

	return m.Split()[ch], nil
}

// WithChannel returns a copy of m whose channel ch is replaced by plane.
// The plane must be single-channel and have m's rows and cols.
func (m *Image) WithChannel(ch int, plane *Image) (*Image, error) {
	if ch < 0 || ch >= m.channels {
		return nil, imageErrorf("WithChannel", 0, 0, ch, ErrOutOfRange)
	}
	if plane == nil {
		return nil, ErrNilImage
	}
	if plane.channels != Gray {
		return nil, ErrChannelCount
	}
	if plane.rows != m.rows || plane.cols != m.cols {
		return nil, ErrDimensionMismatch
	}
	planes := m.Split()
	planes[ch] = plane.Clone()

	return Merge(planes...)
}
