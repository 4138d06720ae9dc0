package app

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixlath/filter"
	"github.com/katalvlaran/pixlath/internal/logging"
	"github.com/katalvlaran/pixlath/raster"
)

func newSmoothCmd(st *state) *cobra.Command {
	var median bool
	cmd := &cobra.Command{
		Use:   "smooth IN OUT",
		Short: "3×3 binomial smoothing, or median denoising",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			img, err := st.load(args[0], raster.Color)
			if err != nil {
				return err
			}
			fn, op := filter.Mean, "mean"
			if median {
				fn, op = filter.Median, "median"
			}

			var out *raster.Image
			err = stage(logging.ComponentFilter, op, func() error {
				out, err = fn(img)

				return err
			})
			if err != nil {
				return err
			}

			return st.store(args[1], out)
		},
	}
	cmd.Flags().BoolVar(&median, "median", false, "Use the median filter")

	return cmd
}

func newSharpenCmd(st *state) *cobra.Command {
	var alpha float64
	cmd := &cobra.Command{
		Use:   "sharpen IN OUT",
		Short: "Laplacian contrast enhancement",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			img, err := st.load(args[0], raster.Color)
			if err != nil {
				return err
			}

			var out *raster.Image
			err = stage(logging.ComponentFilter, "sharpen", func() error {
				out, err = filter.Sharpen(img, alpha)

				return err
			})
			if err != nil {
				return err
			}

			return st.store(args[1], out)
		},
	}
	cmd.Flags().Float64Var(&alpha, "alpha", 1, "Sharpening strength")

	return cmd
}
