// SPDX-License-Identifier: MIT

package imageio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WEBP decoder
)

// Decode reads a picture from r and reports its format name. The header is
// inspected first so that oversized pictures are rejected before their
// pixels are allocated.
func Decode(r io.Reader, opts ...Option) (image.Image, string, error) {
	o := gatherOptions(opts...)

	var b bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(r, &b))
	if err != nil {
		return nil, "", fmt.Errorf("imageio: Decode: %w", err)
	}
	if cfg.Width*cfg.Height > o.maxPixels {
		return nil, "", fmt.Errorf("imageio: Decode: %dx%d: %w", cfg.Width, cfg.Height, ErrTooLarge)
	}

	m, format, err := image.Decode(io.MultiReader(&b, r))
	if err != nil {
		return nil, "", fmt.Errorf("imageio: Decode: %w", err)
	}

	return m, format, nil
}

// Open decodes the file at path.
func Open(path string, opts ...Option) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Save encodes m to path in the format named by its extension.
func Save(path string, m image.Image, opts ...Option) error {
	enc, err := encoderFor(path, gatherOptions(opts...))
	if err != nil {
		return err
	}

	return imgio.Save(path, m, enc)
}

func encoderFor(path string, o Options) (imgio.Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(o.quality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("imageio: Save: %q: %w", ext, ErrUnsupportedFormat)
	}
}
