package app

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixlath/colorspace"
	"github.com/katalvlaran/pixlath/histogram"
	"github.com/katalvlaran/pixlath/internal/logging"
	"github.com/katalvlaran/pixlath/raster"
)

func newEqualizeCmd(st *state) *cobra.Command {
	var hsv bool
	cmd := &cobra.Command{
		Use:   "equalize IN OUT",
		Short: "Histogram equalization of the gray plane, or of the HSV value channel",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			channels := raster.Gray
			if hsv {
				channels = raster.Color
			}
			img, err := st.load(args[0], channels)
			if err != nil {
				return err
			}

			var out *raster.Image
			err = stage(logging.ComponentHistogram, "equalize", func() error {
				out, err = equalize(img, hsv)

				return err
			})
			if err != nil {
				return err
			}

			return st.store(args[1], out)
		},
	}
	cmd.Flags().BoolVar(&hsv, "hsv", false, "Keep color and equalize the HSV value channel")

	return cmd
}

// equalize remaps the gray plane, or the value channel of img seen as HSV.
func equalize(img *raster.Image, hsv bool) (*raster.Image, error) {
	work := img
	if hsv {
		var err error
		if work, err = colorspace.ToHSV(img); err != nil {
			return nil, err
		}
	}
	res, err := histogram.EqualizeImage(work)
	if err != nil {
		return nil, err
	}
	logging.DebugWithComponent(logging.ComponentHistogram, "equalized distribution",
		"peak", res.Histogram.Max(), "sum", res.Histogram.Sum())
	if !hsv {
		return res.Image, nil
	}

	return colorspace.FromHSV(res.Image)
}

func newHistogramCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "histogram IN OUT",
		Short: "Render the histogram and cumulative histogram of the gray plane",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			img, err := st.load(args[0], raster.Gray)
			if err != nil {
				return err
			}
			var chart *raster.Image
			err = stage(logging.ComponentHistogram, "histogram", func() error {
				h, err := histogram.Analyze(img)
				if err != nil {
					return err
				}
				chart = histogram.Render(h, histogram.Cumulate(h))

				return nil
			})
			if err != nil {
				return err
			}

			return st.store(args[1], chart)
		},
	}
}
