// Package config loads CLI defaults from an optional YAML file and PIXLATH_*
// environment variables. Environment values win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pixlath/diffusion"
)

// ErrUnknownPalette is returned by Palette for a name that is neither a
// preset nor defined in the file.
var ErrUnknownPalette = errors.New("config: unknown palette")

// Environment variable names.
const (
	EnvLogLevel         = "PIXLATH_LOG_LEVEL"
	EnvNoColor          = "PIXLATH_NO_COLOR"
	EnvMaxSize          = "PIXLATH_MAX_SIZE"
	EnvDitherThreshold  = "PIXLATH_DITHER_THRESHOLD"
	EnvDitherMargin     = "PIXLATH_DITHER_MARGIN"
	EnvEdgeThreshold    = "PIXLATH_EDGE_THRESHOLD"
	EnvEdgeAlpha        = "PIXLATH_EDGE_ALPHA"
	EnvEdgeMinSegment   = "PIXLATH_EDGE_MIN_SEGMENT"
	EnvSketchProportion = "PIXLATH_SKETCH_PROPORTION"
	EnvSketchLength     = "PIXLATH_SKETCH_LENGTH"
	EnvSketchSeed       = "PIXLATH_SKETCH_SEED"
)

// Config holds the CLI defaults.
type Config struct {
	LogLevel string `yaml:"log_level"`
	NoColor  bool   `yaml:"no_color"`
	// MaxSize bounds the longer side of inputs; 0 keeps the original size.
	MaxSize int `yaml:"max_size"`

	Dither   Dither                  `yaml:"dither"`
	Edge     Edge                    `yaml:"edge"`
	Sketch   Sketch                  `yaml:"sketch"`
	Palettes map[string][][3]float64 `yaml:"palettes"`
}

// Dither configures binary and palette error diffusion.
type Dither struct {
	Threshold float64 `yaml:"threshold"`
	Margin    int     `yaml:"margin"`
}

// Edge configures Marr-Hildreth detection.
type Edge struct {
	Threshold float64 `yaml:"threshold"`
	Alpha     float64 `yaml:"alpha"`
	// MinSegment drops 8-connected edge runs shorter than this many pixels.
	MinSegment int `yaml:"min_segment"`
}

// Sketch configures stroke rendering.
type Sketch struct {
	Proportion float64 `yaml:"proportion"`
	Length     float64 `yaml:"length"`
	Seed       int64   `yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Dither: Dither{
			Threshold: diffusion.DefaultThreshold,
			Margin:    diffusion.DefaultMargin,
		},
		Edge:   Edge{Threshold: 20, Alpha: 20},
		Sketch: Sketch{Proportion: 50, Length: 100, Seed: 1},
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty) and then with the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.LogLevel = Get(EnvLogLevel, c.LogLevel)
	c.NoColor = GetBool(EnvNoColor, c.NoColor)
	c.MaxSize = GetInt(EnvMaxSize, c.MaxSize)
	c.Dither.Threshold = GetFloat(EnvDitherThreshold, c.Dither.Threshold)
	c.Dither.Margin = GetInt(EnvDitherMargin, c.Dither.Margin)
	c.Edge.Threshold = GetFloat(EnvEdgeThreshold, c.Edge.Threshold)
	c.Edge.Alpha = GetFloat(EnvEdgeAlpha, c.Edge.Alpha)
	c.Edge.MinSegment = GetInt(EnvEdgeMinSegment, c.Edge.MinSegment)
	c.Sketch.Proportion = GetFloat(EnvSketchProportion, c.Sketch.Proportion)
	c.Sketch.Length = GetFloat(EnvSketchLength, c.Sketch.Length)
	c.Sketch.Seed = GetInt64(EnvSketchSeed, c.Sketch.Seed)
}

// Palette resolves name against the presets first, then the palettes of the
// file. Colors in the file are normalized RGB triples.
func (c Config) Palette(name string) (diffusion.Palette, error) {
	if mk, ok := diffusion.Presets[name]; ok {
		return mk(), nil
	}
	entries, ok := c.Palettes[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPalette)
	}
	p := make(diffusion.Palette, len(entries))
	for i, e := range entries {
		p[i] = diffusion.Color(e)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("config: palette %q: %w", name, err)
	}

	return p, nil
}

// PaletteNames lists presets and file palettes, sorted.
func (c Config) PaletteNames() []string {
	names := make([]string, 0, len(diffusion.Presets)+len(c.Palettes))
	for n := range diffusion.Presets {
		names = append(names, n)
	}
	for n := range c.Palettes {
		if _, dup := diffusion.Presets[n]; !dup {
			names = append(names, n)
		}
	}
	sort.Strings(names)

	return names
}
