// Package raster provides the dense image buffer shared by every transform
// in pixlath.
//
// What:
//
//   - Image is a rectangular rows×cols grid with 1 or 3 interleaved channels,
//     stored row-major in a flat []float64 (offset = (r*cols+c)*channels+ch).
//   - Samples live in the 0..255 domain; computation keeps full float64
//     precision and Saturate hands the result back as 8-bit values.
//   - Split/Merge implement the order-preserving channel splitter/merger.
//   - Kernel/Correlate implement 3×3 linear filtering with a reflected border.
//
// Why:
//
//   - Every transform takes an immutable input and allocates its own output,
//     so no stage ever aliases another stage's buffer.
//   - Border handling is an explicit policy (Interior) instead of a by-product
//     of loop bounds.
//
// Complexity:
//
//   - New, Clone, Split, Merge, Saturate: O(rows·cols·channels).
//   - Correlate: O(9·rows·cols·channels).
//
// Errors:
//
//   - ErrBadShape: negative rows or cols.
//   - ErrChannelCount: channel count outside {1,3} or not the one expected.
//   - ErrOutOfRange: At/Set with an index outside the image.
//   - ErrDimensionMismatch: planes or samples that do not match the shape.
//   - ErrNilImage: nil *Image passed where an image is required.
package raster
