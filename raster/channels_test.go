package raster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixlath/raster"
)

// TestSplitMerge_RoundTrip verifies that Merge(Split(x)) reproduces x in channel order.
func TestSplitMerge_RoundTrip(t *testing.T) {
	img, err := raster.FromUint8(2, 2, raster.Color, []uint8{
		1, 2, 3, 4, 5, 6,
		7, 8, 9, 10, 11, 12,
	})
	require.NoError(t, err)

	planes := img.Split()
	require.Len(t, planes, 3)
	assert.Equal(t, []float64{1, 4, 7, 10}, planes[0].Samples())
	assert.Equal(t, []float64{2, 5, 8, 11}, planes[1].Samples())
	assert.Equal(t, []float64{3, 6, 9, 12}, planes[2].Samples())

	merged, err := raster.Merge(planes...)
	require.NoError(t, err)
	assert.True(t, img.Equal(merged, 0))
}

// TestMerge_Errors covers the validation order of Merge.
func TestMerge_Errors(t *testing.T) {
	a, _ := raster.New(2, 2, raster.Gray)
	b, _ := raster.New(2, 3, raster.Gray)
	c, _ := raster.New(2, 2, raster.Color)

	_, err := raster.Merge(a, a)
	assert.ErrorIs(t, err, raster.ErrChannelCount)
	_, err = raster.Merge(a, nil, a)
	assert.ErrorIs(t, err, raster.ErrNilImage)
	_, err = raster.Merge(a, c, a)
	assert.ErrorIs(t, err, raster.ErrChannelCount)
	_, err = raster.Merge(a, b, a)
	assert.ErrorIs(t, err, raster.ErrDimensionMismatch)
}

// TestWithChannel replaces a single channel without touching the source.
func TestWithChannel(t *testing.T) {
	img, _ := raster.FromUint8(1, 2, raster.Color, []uint8{1, 2, 3, 4, 5, 6})
	plane, _ := raster.FromUint8(1, 2, raster.Gray, []uint8{50, 60})

	out, err := img.WithChannel(2, plane)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 50, 4, 5, 60}, out.Samples())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, img.Samples())

	_, err = img.WithChannel(3, plane)
	assert.ErrorIs(t, err, raster.ErrOutOfRange)

	ch, err := img.Channel(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, ch.Samples())
}
