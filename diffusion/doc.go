// Package diffusion implements error-diffusion dithering: a scalar binary
// ditherer that treats every channel independently, and a vector ditherer
// that snaps whole pixels to the nearest color of an arbitrary palette.
//
// Both scan the image in row-major raster order (rows top to bottom, columns
// left to right). The order is part of the contract: a pixel's effective
// value includes the error already pushed into it by pixels visited earlier,
// so neither ditherer can be parallelized across pixels of one pass.
//
// Border policy: pixels closer than the margin (default 1) to any edge are
// never quantized and keep their original value in the output. Error
// diffused toward them is discarded with them; error aimed outside the image
// is skipped.
//
// Complexity:
//
//   - Binary:    O(rows·cols·channels·|kernel|).
//   - ToPalette: O(rows·cols·(|palette|+|kernel|)).
//
// Errors:
//
//   - raster.ErrNilImage, raster.ErrChannelCount: malformed input.
//   - ErrEmptyPalette: ToPalette with no colors.
//   - ErrKernelWeights: custom kernel whose weights do not sum to 1.
package diffusion
