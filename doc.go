// Package pixlath is a set of pixel-level raster transforms over in-memory
// images: histogram equalization, error-diffusion dithering (binary and
// palette), gradient fields, Marr-Hildreth edges and stroke sketches.
//
// The library lives in subpackages:
//
//	raster/     : Image type (row-major, 1 or 3 channels), 3×3 kernels, border policy
//	histogram/  : distributions, cumulative histograms, equalization, charts
//	diffusion/  : Floyd–Steinberg binary and palette dithering
//	filter/     : binomial mean, median, Laplacian sharpening
//	gradient/   : Sobel derivatives and magnitude
//	edge/       : zero-crossing edge detection
//	segment/    : connected edge runs and pruning of short ones
//	sketch/     : seeded stroke rendering along edges
//	colorspace/ : RGB to gray and HSV
//	imageio/    : file decode/encode, conversion to and from image.Image
//
// Every transform returns a new image and leaves its input untouched. The
// command in cmd/pixlath exposes them on the command line.
package pixlath
