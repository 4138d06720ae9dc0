// SPDX-License-Identifier: MIT

package diffusion

import "math"

// Tap pushes Weight × residual to the pixel at (row+DRow, col+DCol).
type Tap struct {
	DRow, DCol int
	Weight     float64
}

// ErrorKernel is the set of taps a quantization residual is spread over.
// Every tap must point to a pixel visited later in raster order.
type ErrorKernel []Tap

// FloydSteinberg is the canonical 4-neighbor kernel:
//
//	      *   7
//	  3   5   1     (/16)
var FloydSteinberg = ErrorKernel{
	{DRow: 0, DCol: +1, Weight: 7.0 / 16},
	{DRow: +1, DCol: -1, Weight: 3.0 / 16},
	{DRow: +1, DCol: 0, Weight: 5.0 / 16},
	{DRow: +1, DCol: +1, Weight: 1.0 / 16},
}

// Sum returns the total weight of the kernel.
func (k ErrorKernel) Sum() float64 {
	var s float64
	for _, t := range k {
		s += t.Weight
	}

	return s
}

// Validate reports ErrKernelWeights unless the weights sum to 1 within
// DefaultEpsilon. An empty kernel is invalid.
func (k ErrorKernel) Validate() error {
	if len(k) == 0 || math.Abs(k.Sum()-1) > DefaultEpsilon {
		return ErrKernelWeights
	}

	return nil
}
