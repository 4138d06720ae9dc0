// SPDX-License-Identifier: MIT

package sketch

import (
	"math"
	"math/rand"
)

const (
	// DefaultSeed seeds the Source used when none is injected.
	DefaultSeed int64 = 1

	// DefaultJitter is the full width, in radians, of the uniform angular
	// noise added to each stroke.
	DefaultJitter = 0.02
)

const (
	panicSourceNil     = "sketch: WithSource: source must not be nil"
	panicJitterInvalid = "sketch: WithJitter: jitter must be finite"
)

// Source yields uniform samples in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Option configures Render.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	src    Source
	jitter float64
}

// WithSource injects the random source. It is consumed, not copied.
func WithSource(src Source) Option {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(o *Options) { o.src = src }
}

// WithSeed uses a fresh *rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.src = rand.New(rand.NewSource(seed)) }
}

// WithJitter sets the angular noise width. Zero disables jitter; the second
// draw per stroke is still consumed.
func WithJitter(j float64) Option {
	if math.IsNaN(j) || math.IsInf(j, 0) {
		panic(panicJitterInvalid)
	}

	return func(o *Options) { o.jitter = j }
}

func gatherOptions(opts ...Option) Options {
	o := Options{jitter: DefaultJitter}
	for _, fn := range opts {
		fn(&o)
	}
	if o.src == nil {
		o.src = rand.New(rand.NewSource(DefaultSeed))
	}

	return o
}
