// SPDX-License-Identifier: MIT

package histogram

import (
	"fmt"

	"github.com/katalvlaran/pixlath/raster"
)

// Result bundles an equalized image with the distribution recomputed from it.
type Result struct {
	Image      *raster.Image
	Histogram  Histogram
	Cumulative Cumulative
}

// Equalize remaps one channel of img through cum, the cumulative distribution
// of that channel, and returns a new image together with its recomputed
// distribution and cumulative distribution. Other channels are copied
// unchanged; img itself is never modified.
//
// Implementation:
//   - Stage 1: validate img and resolve the channel (default: last).
//   - Stage 2: build the lookup round(255·C[level]).
//   - Stage 3: remap the channel in a clone.
//   - Stage 4: re-analyze the remapped channel.
//
// Complexity: O(rows·cols·channels).
func Equalize(img *raster.Image, cum Cumulative, opts ...Option) (*Result, error) {
	if img == nil {
		return nil, fmt.Errorf("histogram: Equalize: %w", raster.ErrNilImage)
	}
	ch, err := gatherOptions(opts...).resolve(img.Channels())
	if err != nil {
		return nil, err
	}

	lut := cum.Lookup()
	out := img.Clone()
	for r := 0; r < out.Rows(); r++ {
		for c := 0; c < out.Cols(); c++ {
			out.SetSample(r, c, ch, lut[level(out.Sample(r, c, ch))])
		}
	}

	h := count(out, ch)

	return &Result{Image: out, Histogram: h, Cumulative: Cumulate(h)}, nil
}

// EqualizeImage analyzes the selected channel of img and equalizes it in one
// call.
func EqualizeImage(img *raster.Image, opts ...Option) (*Result, error) {
	if img == nil {
		return nil, fmt.Errorf("histogram: EqualizeImage: %w", raster.ErrNilImage)
	}
	ch, err := gatherOptions(opts...).resolve(img.Channels())
	if err != nil {
		return nil, err
	}

	return Equalize(img, Cumulate(count(img, ch)), WithChannel(ch))
}
