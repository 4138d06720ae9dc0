// SPDX-License-Identifier: MIT

package imageio

import (
	"fmt"

	"github.com/makeworld-the-better-one/dither/v2"

	"github.com/katalvlaran/pixlath/diffusion"
	"github.com/katalvlaran/pixlath/raster"
)

// ReferenceDither dithers a three-channel image against p with the
// Floyd–Steinberg matrix of github.com/makeworld-the-better-one/dither. That
// engine works in linear RGB and visits every pixel, border included, so its
// output differs from diffusion.ToPalette; it is meant for comparison.
func ReferenceDither(img *raster.Image, p diffusion.Palette) (*raster.Image, error) {
	if err := raster.Require(img, raster.Color); err != nil {
		return nil, fmt.Errorf("imageio: ReferenceDither: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("imageio: ReferenceDither: %w", err)
	}
	src, err := ToImage(img)
	if err != nil {
		return nil, err
	}

	d := dither.NewDitherer(p.Colors())
	d.Matrix = dither.FloydSteinberg
	dst := d.Dither(src)
	if dst == nil {
		// modified in place
		dst = src
	}

	return FromImage(dst, raster.Color)
}
