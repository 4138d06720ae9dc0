// SPDX-License-Identifier: MIT

// Package diffusion: functional configuration shared by Binary and ToPalette.
//
// Defaults reproduce the classic behavior: Floyd–Steinberg taps, a one-pixel
// untouched border ring, and a binary threshold of 128 (values strictly above
// become 255).
package diffusion

import (
	"math"

	"github.com/katalvlaran/pixlath/raster"
)

const (
	// DefaultThreshold splits the 0..255 range for Binary: v > 128 → 255.
	DefaultThreshold = 128.0

	// DefaultMargin is the width of the border ring left untouched.
	DefaultMargin = raster.DefaultMargin

	// DefaultEpsilon is the tolerance of the kernel weight check.
	DefaultEpsilon = 1e-9
)

const (
	panicMarginInvalid    = "diffusion: WithMargin: margin must be >= 0"
	panicThresholdInvalid = "diffusion: WithThreshold: threshold must be finite"
	panicKernelNil        = "diffusion: WithKernel: kernel must not be empty"
)

// Option mutates the ditherer configuration.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	kernel    ErrorKernel
	margin    int
	threshold float64
}

// WithKernel replaces the Floyd–Steinberg taps. The kernel's weights are
// validated when dithering starts (ErrKernelWeights).
func WithKernel(k ErrorKernel) Option {
	if len(k) == 0 {
		panic(panicKernelNil)
	}
	cp := make(ErrorKernel, len(k))
	copy(cp, k)

	return func(o *Options) { o.kernel = cp }
}

// WithMargin sets the width of the untouched border ring. Margin 0 scans the
// whole image; taps that fall outside it are skipped.
func WithMargin(m int) Option {
	if m < 0 {
		panic(panicMarginInvalid)
	}

	return func(o *Options) { o.margin = m }
}

// WithThreshold sets the binary quantization threshold (Binary only).
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		kernel:    FloydSteinberg,
		margin:    DefaultMargin,
		threshold: DefaultThreshold,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
