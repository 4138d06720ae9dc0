// SPDX-License-Identifier: MIT

package imageio

import "errors"

var (
	// ErrUnsupportedFormat is returned by Save for an unknown file extension.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrTooLarge is returned by Decode when the picture exceeds the pixel limit.
	ErrTooLarge = errors.New("imageio: image too large")
)
