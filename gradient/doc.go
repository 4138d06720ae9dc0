// Package gradient computes directional derivatives of single-channel planes
// with quarter-weighted Sobel kernels and combines them into a magnitude
// plane.
//
// Two uses are supported:
//
//   - Horizontal and Vertical produce a derivative for direct viewing. A
//     display bias (128 by default) shifts the signed response into the
//     0..255 range.
//   - Compute produces the unbiased Field used by edge detection and stroke
//     rendering. The bias must be zero there, otherwise the magnitude would
//     be computed on shifted values.
//
// Magnitude is computed for rows 1..rows-1 only. Row 0 keeps the input
// samples unchanged.
package gradient
