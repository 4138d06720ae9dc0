// SPDX-License-Identifier: MIT

package gradient

import "github.com/katalvlaran/pixlath/raster"

// DisplayBias shifts a signed derivative into the 0..255 display range.
const DisplayBias = 128.0

var (
	// SobelX responds to intensity increasing from left to right.
	SobelX = raster.Kernel{
		{-0.25, 0, 0.25},
		{-0.5, 0, 0.5},
		{-0.25, 0, 0.25},
	}

	// SobelY responds to intensity increasing from top to bottom.
	SobelY = raster.Kernel{
		{-0.25, -0.5, -0.25},
		{0, 0, 0},
		{0.25, 0.5, 0.25},
	}
)
