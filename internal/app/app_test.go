package app_test

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixlath/imageio"
	"github.com/katalvlaran/pixlath/internal/app"
	"github.com/katalvlaran/pixlath/internal/config"
)

// gradientPNG writes a w×h picture with a diagonal color ramp and returns
// its path.
func gradientPNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * x / (w - 1)),
				G: uint8(255 * y / (h - 1)),
				B: uint8(255 * (x + y) / (w + h - 2)),
				A: 255,
			})
		}
	}
	path := filepath.Join(dir, "in.png")
	require.NoError(t, imageio.Save(path, m))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stderr bytes.Buffer
	t.Setenv(config.EnvNoColor, "true")
	cmd := app.NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	err := cmd.Execute()

	return stderr.String(), err
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	in := gradientPNG(t, dir, 16, 12)

	cases := []struct {
		name   string
		args   []string
		w, h   int
		stages string
	}{
		{"equalize", []string{"equalize"}, 16, 12, "equalize"},
		{"equalize-hsv", []string{"equalize", "--hsv"}, 16, 12, "equalize"},
		{"histogram", []string{"histogram"}, 512, 256, "histogram"},
		{"dither", []string{"dither"}, 16, 12, "dither"},
		{"dither-gray", []string{"dither", "--gray", "--threshold", "100", "--margin", "0"}, 16, 12, "dither"},
		{"palette", []string{"palette", "--palette", "subtractive"}, 16, 12, "palette"},
		{"palette-reference", []string{"palette", "--engine", "reference"}, 16, 12, "palette"},
		{"sobel", []string{"sobel", "--axis", "y"}, 16, 12, "sobel"},
		{"gradient", []string{"gradient"}, 16, 12, "gradient"},
		{"edges", []string{"edges", "--threshold", "5", "--alpha", "1"}, 16, 12, "edges"},
		{"edges-pruned", []string{"edges", "--threshold", "5", "--min-segment", "4"}, 16, 12, "prune"},
		{"sketch", []string{"sketch", "--seed", "3", "--proportion", "100"}, 16, 12, "sketch"},
		{"smooth", []string{"smooth"}, 16, 12, "mean"},
		{"median", []string{"smooth", "--median"}, 16, 12, "median"},
		{"sharpen", []string{"sharpen", "--alpha", "0.5"}, 16, 12, "sharpen"},
		{"max-size", []string{"--max-size", "8", "dither"}, 8, 6, "dither"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := filepath.Join(dir, tc.name+".png")
			logs, err := run(t, append(tc.args, in, out)...)
			require.NoError(t, err, logs)
			assert.Contains(t, logs, tc.stages)

			m, err := imageio.Open(out)
			require.NoError(t, err)
			assert.Equal(t, tc.w, m.Bounds().Dx())
			assert.Equal(t, tc.h, m.Bounds().Dy())
		})
	}
}

func TestSketch_Reproducible(t *testing.T) {
	dir := t.TempDir()
	in := gradientPNG(t, dir, 20, 20)
	a, b := filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")
	_, err := run(t, "sketch", "--seed", "11", "--threshold", "1", in, a)
	require.NoError(t, err)
	_, err = run(t, "sketch", "--seed", "11", "--threshold", "1", in, b)
	require.NoError(t, err)

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestCommands_Errors(t *testing.T) {
	dir := t.TempDir()
	in := gradientPNG(t, dir, 4, 4)

	_, err := run(t, "palette", "--palette", "sepia", in, filepath.Join(dir, "o.png"))
	assert.ErrorIs(t, err, config.ErrUnknownPalette)

	_, err = run(t, "dither", in, filepath.Join(dir, "o.gifx"))
	assert.ErrorIs(t, err, imageio.ErrUnsupportedFormat)

	_, err = run(t, "sobel", "--axis", "z", in, filepath.Join(dir, "o.png"))
	assert.Error(t, err)

	_, err = run(t, "dither", filepath.Join(dir, "missing.png"), filepath.Join(dir, "o.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "gradient", in)
	assert.Error(t, err)
}

func TestUnknownLevelWarns(t *testing.T) {
	dir := t.TempDir()
	in := gradientPNG(t, dir, 4, 4)

	logs, err := run(t, "--level", "loud", "equalize", in, filepath.Join(dir, "o.png"))
	require.NoError(t, err)
	assert.Contains(t, logs, "unknown log level")
	assert.Contains(t, logs, "loud")
	assert.Contains(t, logs, "equalize", "info records still pass")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := gradientPNG(t, dir, 6, 6)
	cfgPath := filepath.Join(dir, "pixlath.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: debug\npalettes:\n  duo: [[0, 0, 0], [1, 1, 1]]\n"), 0o600))

	logs, err := run(t, "--config", cfgPath, "palette", "--palette", "duo", in, filepath.Join(dir, "duo.png"))
	require.NoError(t, err)
	assert.Contains(t, logs, "palette applied")
	assert.Contains(t, logs, "colors=2")
}
