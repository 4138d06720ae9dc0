// Package edge implements Marr-Hildreth style edge detection.
//
// A pixel is an edge when two tests hold:
//
//  1. Zero-crossing: its 3×3 neighborhood in the Laplacian-sharpened plane
//     holds both a negative and a non-negative value.
//  2. Strength: its gradient magnitude is at least the threshold.
//
// MarrHildreth renders edges as 0 (black) on a 255 (white) background. The
// one-pixel border ring is not classified and keeps its input values. The
// same Map drives stroke placement in package sketch.
package edge
