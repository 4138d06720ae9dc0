// SPDX-License-Identifier: MIT

package imageio

const (
	// DefaultMaxPixels bounds the area accepted by Decode (30 Mpx).
	DefaultMaxPixels = 30_000_000

	// DefaultJPEGQuality is the quality used by Save for .jpg/.jpeg.
	DefaultJPEGQuality = 90
)

const (
	panicMaxPixelsInvalid = "imageio: WithMaxPixels: limit must be > 0"
	panicQualityInvalid   = "imageio: WithJPEGQuality: quality must be in 1..100"
)

// Option configures Decode, Open and Save.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	maxPixels int
	quality   int
}

// WithMaxPixels overrides DefaultMaxPixels.
func WithMaxPixels(n int) Option {
	if n <= 0 {
		panic(panicMaxPixelsInvalid)
	}

	return func(o *Options) { o.maxPixels = n }
}

// WithJPEGQuality overrides DefaultJPEGQuality.
func WithJPEGQuality(q int) Option {
	if q < 1 || q > 100 {
		panic(panicQualityInvalid)
	}

	return func(o *Options) { o.quality = q }
}

func gatherOptions(opts ...Option) Options {
	o := Options{maxPixels: DefaultMaxPixels, quality: DefaultJPEGQuality}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
