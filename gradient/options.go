// SPDX-License-Identifier: MIT

package gradient

import "math"

const panicBiasInvalid = "gradient: WithBias: bias must be finite"

// Option configures Horizontal and Vertical.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	bias float64
}

// WithBias overrides DisplayBias. WithBias(0) yields the raw signed response.
func WithBias(b float64) Option {
	if math.IsNaN(b) || math.IsInf(b, 0) {
		panic(panicBiasInvalid)
	}

	return func(o *Options) { o.bias = b }
}

func gatherOptions(opts ...Option) Options {
	o := Options{bias: DisplayBias}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
