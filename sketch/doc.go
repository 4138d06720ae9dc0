// Package sketch renders line-art from a single-channel image by stamping
// short strokes at edge pixels.
//
// A pixel qualifies for a stroke under the same tests as edge.MarrHildreth.
// For each qualifying interior pixel, in raster order, one uniform draw u
// decides whether a stroke is placed (u < Proportion/100). A second draw
// jitters the stroke angle. Strokes are black (0), one pixel thick and
// 8-connected; they may cross pixels that are visited later, in which case
// the later pixel's own outcome wins. Every non-qualifying or undrawn
// interior pixel becomes white (255). The border ring keeps the input except
// where a stroke crosses it: strokes are clipped to the image, not to the
// interior.
//
// Randomness comes from an injected Source. Two renders with sources seeded
// alike produce identical output.
package sketch
