package diffusion

import "errors"

var (
	// ErrEmptyPalette indicates a palette with no colors.
	ErrEmptyPalette = errors.New("diffusion: palette must contain at least one color")

	// ErrPaletteColor indicates a palette entry with a NaN or infinite component.
	ErrPaletteColor = errors.New("diffusion: palette colors must be finite")

	// ErrKernelWeights indicates an error kernel whose weights do not sum to 1,
	// which would create or destroy intensity while diffusing.
	ErrKernelWeights = errors.New("diffusion: kernel weights must sum to 1")
)
