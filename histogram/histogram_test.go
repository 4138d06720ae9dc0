package histogram_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixlath/histogram"
	"github.com/katalvlaran/pixlath/raster"
)

// randomPlane builds a deterministic rows×cols gray plane.
func randomPlane(t *testing.T, rows, cols int, seed int64) *raster.Image {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	pix := make([]uint8, rows*cols)
	for i := range pix {
		pix[i] = uint8(rng.Intn(256))
	}
	img, err := raster.FromUint8(rows, cols, raster.Gray, pix)
	require.NoError(t, err)

	return img
}

// constantPlane builds a rows×cols gray plane filled with v.
func constantPlane(t *testing.T, rows, cols int, v float64) *raster.Image {
	t.Helper()
	img, err := raster.New(rows, cols, raster.Gray)
	require.NoError(t, err)
	img.Fill(v)

	return img
}

// TestAnalyze_SumsToOne checks the probability invariant on random planes.
func TestAnalyze_SumsToOne(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		h, err := histogram.Analyze(randomPlane(t, 17, 23, seed))
		require.NoError(t, err)
		assert.InDelta(t, 1.0, h.Sum(), 1e-9, "seed %d", seed)
	}
}

// TestAnalyze_Empty yields an all-zero distribution instead of failing.
func TestAnalyze_Empty(t *testing.T) {
	img, err := raster.New(0, 0, raster.Gray)
	require.NoError(t, err)
	h, err := histogram.Analyze(img)
	require.NoError(t, err)
	assert.Equal(t, histogram.Histogram{}, h)
	assert.Equal(t, histogram.Cumulative{}, histogram.Cumulate(h))
}

// TestAnalyze_ChannelCount rejects a color image before counting.
func TestAnalyze_ChannelCount(t *testing.T) {
	img, _ := raster.New(2, 2, raster.Color)
	_, err := histogram.Analyze(img)
	assert.ErrorIs(t, err, raster.ErrChannelCount)

	_, err = histogram.Analyze(nil)
	assert.ErrorIs(t, err, raster.ErrNilImage)
}

// TestAnalyzeChannel reads one channel of an interleaved image.
func TestAnalyzeChannel(t *testing.T) {
	img, _ := raster.FromUint8(1, 2, raster.Color, []uint8{0, 0, 10, 0, 0, 20})
	h, err := histogram.AnalyzeChannel(img, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.5, h[10])
	assert.Equal(t, 0.5, h[20])

	_, err = histogram.AnalyzeChannel(img, 3)
	assert.ErrorIs(t, err, histogram.ErrChannelIndex)
}

// TestCumulate_Monotone verifies the cumulative invariants.
func TestCumulate_Monotone(t *testing.T) {
	h, err := histogram.Analyze(randomPlane(t, 32, 32, 7))
	require.NoError(t, err)
	c := histogram.Cumulate(h)

	assert.Equal(t, h[0], c[0])
	for i := 1; i < histogram.Levels; i++ {
		assert.GreaterOrEqual(t, c[i], c[i-1], "level %d", i)
	}
	assert.InDelta(t, 1.0, c[histogram.Levels-1], 1e-9)
}

// TestScenario_Constant200 is the 4×4 all-200 scenario: spike, step, all white.
func TestScenario_Constant200(t *testing.T) {
	img := constantPlane(t, 4, 4, 200)

	h, err := histogram.Analyze(img)
	require.NoError(t, err)
	for i, v := range h {
		if i == 200 {
			assert.Equal(t, 1.0, v)
		} else {
			assert.Equal(t, 0.0, v, "bin %d", i)
		}
	}

	c := histogram.Cumulate(h)
	for i, v := range c {
		if i < 200 {
			assert.Equal(t, 0.0, v, "level %d", i)
		} else {
			assert.Equal(t, 1.0, v, "level %d", i)
		}
	}

	res, err := histogram.Equalize(img, c)
	require.NoError(t, err)
	for _, v := range res.Image.Samples() {
		assert.Equal(t, 255.0, v)
	}
	assert.Equal(t, 1.0, res.Histogram[255])
	// The input is never mutated.
	assert.Equal(t, 200.0, img.Sample(0, 0, 0))
}

// TestEqualize_SpikeIsFixedPoint checks idempotence on single-level images.
func TestEqualize_SpikeIsFixedPoint(t *testing.T) {
	for _, v := range []float64{1, 77, 255} {
		first, err := histogram.EqualizeImage(constantPlane(t, 3, 5, v))
		require.NoError(t, err)
		second, err := histogram.Equalize(first.Image, first.Cumulative)
		require.NoError(t, err)
		assert.True(t, first.Image.Equal(second.Image, 0), "value %v", v)
		assert.Equal(t, first.Histogram, second.Histogram)
	}
}

// TestEqualize_Ramp checks the remapping formula on a 4-level ramp.
func TestEqualize_Ramp(t *testing.T) {
	img, _ := raster.FromUint8(1, 4, raster.Gray, []uint8{0, 1, 2, 3})
	res, err := histogram.EqualizeImage(img)
	require.NoError(t, err)
	// C = .25, .5, .75, 1 → round(63.75)=64, round(127.5)=128, round(191.25)=191, 255.
	assert.Equal(t, []float64{64, 128, 191, 255}, res.Image.Samples())
	assert.InDelta(t, 1.0, res.Histogram.Sum(), 1e-9)
}

// TestEqualize_ColorValueChannel remaps only the selected channel.
func TestEqualize_ColorValueChannel(t *testing.T) {
	img, _ := raster.FromUint8(1, 2, raster.Color, []uint8{10, 20, 100, 30, 40, 100})
	res, err := histogram.EqualizeImage(img)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 255, 30, 40, 255}, res.Image.Samples())

	res, err = histogram.EqualizeImage(img, histogram.WithChannel(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{128, 20, 100, 255, 40, 100}, res.Image.Samples())

	_, err = histogram.EqualizeImage(img, histogram.WithChannel(5))
	assert.ErrorIs(t, err, histogram.ErrChannelIndex)
}

// TestWithChannel_Panics on a negative index (programmer error).
func TestWithChannel_Panics(t *testing.T) {
	assert.Panics(t, func() { histogram.WithChannel(-2) })
}

// TestRender draws bars scaled to each curve's peak.
func TestRender(t *testing.T) {
	img := constantPlane(t, 2, 2, 10)
	h, _ := histogram.Analyze(img)
	chart := histogram.Render(h, histogram.Cumulate(h))

	require.Equal(t, histogram.ChartRows, chart.Rows())
	require.Equal(t, histogram.ChartCols, chart.Cols())
	// Spike at level 10 fills the whole column.
	assert.Equal(t, 0.0, chart.Sample(0, 10, 0))
	assert.Equal(t, 255.0, chart.Sample(histogram.ChartRows-1, 9, 0))
	// Cumulative step: full columns from level 10 on, empty before.
	assert.Equal(t, 255.0, chart.Sample(histogram.ChartRows-1, histogram.Levels+9, 0))
	assert.Equal(t, 0.0, chart.Sample(0, histogram.Levels+200, 0))

	blank := histogram.Render(histogram.Histogram{}, histogram.Cumulative{})
	for _, v := range blank.Samples() {
		assert.Equal(t, 255.0, v)
	}
}
