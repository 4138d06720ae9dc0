package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixlath/diffusion"
	"github.com/katalvlaran/pixlath/internal/config"
)

const sample = `
log_level: debug
max_size: 800
dither:
  threshold: 100
edge:
  alpha: 2
sketch:
  seed: 9
palettes:
  duo:
    - [0, 0, 0]
    - [1, 0.5, 0]
  empty: []
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pixlath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 128.0, cfg.Dither.Threshold)
	assert.Equal(t, 1, cfg.Dither.Margin)
}

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(writeFile(t, sample))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 800, cfg.MaxSize)
	assert.Equal(t, 100.0, cfg.Dither.Threshold)
	assert.Equal(t, 1, cfg.Dither.Margin, "unset keys keep defaults")
	assert.Equal(t, 2.0, cfg.Edge.Alpha)
	assert.Equal(t, 20.0, cfg.Edge.Threshold)
	assert.Equal(t, int64(9), cfg.Sketch.Seed)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvEdgeThreshold, "55")
	t.Setenv(config.EnvSketchSeed, "not-a-number")
	secret := filepath.Join(t.TempDir(), "level")
	require.NoError(t, os.WriteFile(secret, []byte("warn\n"), 0o600))
	t.Setenv(config.EnvLogLevel+"_FILE", secret)

	cfg, err := config.Load(writeFile(t, sample))
	require.NoError(t, err)
	assert.Equal(t, 55.0, cfg.Edge.Threshold)
	assert.Equal(t, int64(9), cfg.Sketch.Seed, "invalid env values are ignored")
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, err = config.Load(writeFile(t, "dither: [1, 2"))
	assert.Error(t, err)
}

func TestPalette(t *testing.T) {
	cfg, err := config.Load(writeFile(t, sample))
	require.NoError(t, err)

	p, err := cfg.Palette("additive")
	require.NoError(t, err)
	assert.Equal(t, diffusion.Additive(), p)

	p, err = cfg.Palette("duo")
	require.NoError(t, err)
	assert.Equal(t, diffusion.Palette{{0, 0, 0}, {1, 0.5, 0}}, p)

	_, err = cfg.Palette("empty")
	assert.ErrorIs(t, err, diffusion.ErrEmptyPalette)
	_, err = cfg.Palette("nope")
	assert.ErrorIs(t, err, config.ErrUnknownPalette)

	assert.Equal(t, []string{"additive", "duo", "empty", "subtractive"}, cfg.PaletteNames())
}

func TestPalette_NonFinite(t *testing.T) {
	cfg, err := config.Load(writeFile(t, `
palettes:
  nan:
    - [0, 0, 0]
    - [.nan, 0, 0]
  inf:
    - [.inf, 1, 1]
`))
	require.NoError(t, err)

	for _, name := range []string{"nan", "inf"} {
		_, err = cfg.Palette(name)
		assert.ErrorIs(t, err, diffusion.ErrPaletteColor, name)
	}
}
