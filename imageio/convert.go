// SPDX-License-Identifier: MIT

package imageio

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/effect"
	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/pixlath/raster"
)

// FromImage converts m to a raster.Image with the requested channel count.
// One channel yields the luminance plane; three yield R, G, B. Alpha is
// dropped.
func FromImage(m image.Image, channels int) (*raster.Image, error) {
	b := m.Bounds()
	switch channels {
	case raster.Gray:
		g := effect.Grayscale(m)
		out, err := raster.New(b.Dy(), b.Dx(), raster.Gray)
		if err != nil {
			return nil, err
		}
		for y := 0; y < b.Dy(); y++ {
			row := g.Pix[y*g.Stride : y*g.Stride+b.Dx()]
			for x, v := range row {
				out.SetSample(y, x, 0, float64(v))
			}
		}

		return out, nil
	case raster.Color:
		rgba := clone.AsRGBA(m)
		out, err := raster.New(b.Dy(), b.Dx(), raster.Color)
		if err != nil {
			return nil, err
		}
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				i := y*rgba.Stride + 4*x
				out.SetSample(y, x, 0, float64(rgba.Pix[i]))
				out.SetSample(y, x, 1, float64(rgba.Pix[i+1]))
				out.SetSample(y, x, 2, float64(rgba.Pix[i+2]))
			}
		}

		return out, nil
	default:
		return nil, fmt.Errorf("imageio: FromImage: %d: %w", channels, raster.ErrChannelCount)
	}
}

// ToImage converts img to *image.Gray (one channel) or opaque *image.RGBA
// (three channels). Samples are rounded and clamped to 0..255.
func ToImage(img *raster.Image) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("imageio: ToImage: %w", raster.ErrNilImage)
	}
	pix := img.Uint8()
	rect := image.Rect(0, 0, img.Cols(), img.Rows())
	if img.Channels() == raster.Gray {
		g := image.NewGray(rect)
		copy(g.Pix, pix)

		return g, nil
	}

	rgba := image.NewRGBA(rect)
	for i, j := 0, 0; i < len(pix); i, j = i+3, j+4 {
		rgba.Pix[j] = pix[i]
		rgba.Pix[j+1] = pix[i+1]
		rgba.Pix[j+2] = pix[i+2]
		rgba.Pix[j+3] = 0xff
	}

	return rgba, nil
}

// Fit scales m down, keeping its aspect ratio, so that it fits in
// maxW×maxH. Pictures that already fit, or a non-positive limit, are
// returned unchanged.
func Fit(m image.Image, maxW, maxH int) image.Image {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxW <= 0 || maxH <= 0 || w == 0 || h == 0 || (w <= maxW && h <= maxH) {
		return m
	}

	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}
	nw, nh := max(1, int(float64(w)*scale)), max(1, int(float64(h)*scale))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), m, b, xdraw.Src, nil)

	return dst
}
