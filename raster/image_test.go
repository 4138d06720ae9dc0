package raster_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixlath/raster"
)

// TestNew_Errors verifies that New rejects negative shapes and unsupported channel counts.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name             string
		rows, cols, chns int
		err              error
	}{
		{"NegativeRows", -1, 2, 1, raster.ErrBadShape},
		{"NegativeCols", 2, -1, 1, raster.ErrBadShape},
		{"ZeroChannels", 2, 2, 0, raster.ErrChannelCount},
		{"TwoChannels", 2, 2, 2, raster.ErrChannelCount},
		{"FourChannels", 2, 2, 4, raster.ErrChannelCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := raster.New(tc.rows, tc.cols, tc.chns)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d,%d) error = %v; want %v", tc.rows, tc.cols, tc.chns, err, tc.err)
			}
		})
	}
}

// TestNew_ZeroArea checks that an empty image is legal and reports Empty.
func TestNew_ZeroArea(t *testing.T) {
	img, err := raster.New(0, 5, raster.Gray)
	require.NoError(t, err)
	assert.True(t, img.Empty())
	assert.Equal(t, 0, img.Pixels())
	assert.Empty(t, img.Samples())
}

// TestAtSet_Bounds verifies the checked accessors and their error wrapping.
func TestAtSet_Bounds(t *testing.T) {
	img, err := raster.New(2, 3, raster.Color)
	require.NoError(t, err)

	require.NoError(t, img.Set(1, 2, 2, 42))
	v, err := img.At(1, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
	assert.Equal(t, 42.0, img.Sample(1, 2, 2))

	for _, idx := range [][3]int{{-1, 0, 0}, {2, 0, 0}, {0, 3, 0}, {0, 0, 3}, {0, 0, -1}} {
		_, err := img.At(idx[0], idx[1], idx[2])
		assert.ErrorIs(t, err, raster.ErrOutOfRange, "At%v", idx)
		assert.ErrorIs(t, img.Set(idx[0], idx[1], idx[2], 1), raster.ErrOutOfRange, "Set%v", idx)
	}
}

// TestFromSamples_CopiesInput ensures the image owns its storage.
func TestFromSamples_CopiesInput(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	img, err := raster.FromSamples(2, 2, raster.Gray, src)
	require.NoError(t, err)
	src[0] = 99
	assert.Equal(t, 1.0, img.Sample(0, 0, 0))

	_, err = raster.FromSamples(2, 2, raster.Gray, src[:3])
	assert.ErrorIs(t, err, raster.ErrDimensionMismatch)
}

// TestClone_Independent verifies that Clone does not alias the original.
func TestClone_Independent(t *testing.T) {
	img, err := raster.FromUint8(1, 2, raster.Gray, []uint8{10, 20})
	require.NoError(t, err)
	cp := img.Clone()
	cp.SetSample(0, 0, 0, 77)
	assert.Equal(t, 10.0, img.Sample(0, 0, 0))
	assert.True(t, img.Equal(img.Clone(), 0))
	assert.False(t, img.Equal(cp, 0))
}

// TestSaturate rounds half-to-even and clamps into the 8-bit domain.
func TestSaturate(t *testing.T) {
	img, err := raster.FromSamples(1, 6, raster.Gray, []float64{-3, 0.5, 1.5, 254.6, 300, math.NaN()})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 2, 255, 255, 0}, img.Saturate().Samples())
	assert.Equal(t, []uint8{0, 0, 2, 255, 255, 0}, img.Uint8())
}

// TestRequire checks the channel-count guard used by every transform.
func TestRequire(t *testing.T) {
	gray, _ := raster.New(2, 2, raster.Gray)
	assert.NoError(t, raster.Require(gray, raster.Gray))
	assert.ErrorIs(t, raster.Require(gray, raster.Color), raster.ErrChannelCount)
	assert.ErrorIs(t, raster.Require(nil, raster.Gray), raster.ErrNilImage)
}

// TestInterior covers the explicit border policy, including degenerate sizes.
func TestInterior(t *testing.T) {
	img, _ := raster.New(4, 5, raster.Gray)
	assert.False(t, img.Interior(0, 2, 1))
	assert.False(t, img.Interior(3, 2, 1))
	assert.False(t, img.Interior(2, 0, 1))
	assert.False(t, img.Interior(2, 4, 1))
	assert.True(t, img.Interior(1, 1, 1))
	assert.True(t, img.Interior(2, 3, 1))
	assert.True(t, img.Interior(0, 0, 0))

	w := img.InteriorWindow(1)
	assert.Equal(t, raster.Window{Row0: 1, Row1: 3, Col0: 1, Col1: 4}, w)

	line, _ := raster.New(1, 5, raster.Gray)
	assert.True(t, line.InteriorWindow(1).Empty())
	assert.False(t, line.InteriorWindow(0).Empty())
}
