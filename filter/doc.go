// Package filter provides the 3×3 neighborhood filters used ahead of edge
// analysis: binomial smoothing, median denoising and Laplacian sharpening.
//
// All filters work on every channel independently, return a new image and
// never modify their input. Linear filters read outside pixels through the
// reflect-101 border of raster.Correlate; Median replicates the edge pixel.
package filter
