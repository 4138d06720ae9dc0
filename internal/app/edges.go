package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixlath/edge"
	"github.com/katalvlaran/pixlath/gradient"
	"github.com/katalvlaran/pixlath/internal/logging"
	"github.com/katalvlaran/pixlath/raster"
	"github.com/katalvlaran/pixlath/segment"
	"github.com/katalvlaran/pixlath/sketch"
)

func newSobelCmd(st *state) *cobra.Command {
	var axis string
	cmd := &cobra.Command{
		Use:   "sobel IN OUT",
		Short: "Directional derivative shifted by 128 for viewing",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			var fn func(*raster.Image, ...gradient.Option) (*raster.Image, error)
			switch axis {
			case "x":
				fn = gradient.Horizontal
			case "y":
				fn = gradient.Vertical
			default:
				return fmt.Errorf("unknown axis %q", axis)
			}
			img, err := st.load(args[0], raster.Gray)
			if err != nil {
				return err
			}

			var out *raster.Image
			err = stage(logging.ComponentGradient, "sobel", func() error {
				out, err = fn(img)

				return err
			})
			if err != nil {
				return err
			}

			return st.store(args[1], out)
		},
	}
	cmd.Flags().StringVar(&axis, "axis", "x", "x or y")

	return cmd
}

func newGradientCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "gradient IN OUT",
		Short: "Gradient magnitude",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			img, err := st.load(args[0], raster.Gray)
			if err != nil {
				return err
			}

			var f *gradient.Field
			err = stage(logging.ComponentGradient, "gradient", func() error {
				f, err = gradient.Compute(img)

				return err
			})
			if err != nil {
				return err
			}

			return st.store(args[1], f.Magnitude)
		},
	}
}

func newEdgesCmd(st *state) *cobra.Command {
	var (
		threshold, alpha float64
		minSegment       int
	)
	cmd := &cobra.Command{
		Use:   "edges IN OUT",
		Short: "Marr-Hildreth edges, black on white",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := st.load(args[0], raster.Gray)
			if err != nil {
				return err
			}
			th := pick(cmd, "threshold", threshold, st.cfg.Edge.Threshold)
			a := pick(cmd, "alpha", alpha, st.cfg.Edge.Alpha)
			minSeg := pick(cmd, "min-segment", minSegment, st.cfg.Edge.MinSegment)

			var out *raster.Image
			err = stage(logging.ComponentEdge, "edges", func() error {
				out, err = edge.MarrHildreth(img, th, a)

				return err
			})
			if err != nil {
				return err
			}
			if minSeg > 1 {
				err = stage(logging.ComponentEdge, "prune", func() error {
					out, err = segment.Prune(out, edge.Edge, minSeg, segment.Conn8, edge.Background)

					return err
				})
				if err != nil {
					return err
				}
			}

			return st.store(args[1], out)
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 20, "Minimum gradient magnitude")
	cmd.Flags().Float64Var(&alpha, "alpha", 20, "Sharpening strength")
	cmd.Flags().IntVar(&minSegment, "min-segment", 0, "Drop edge runs shorter than this many pixels")

	return cmd
}

func newSketchCmd(st *state) *cobra.Command {
	var (
		p    sketch.Params
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "sketch IN OUT",
		Short: "Line-art strokes along edges",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := st.load(args[0], raster.Gray)
			if err != nil {
				return err
			}
			params := sketch.Params{
				Threshold:  pick(cmd, "threshold", p.Threshold, st.cfg.Edge.Threshold),
				Alpha:      pick(cmd, "alpha", p.Alpha, st.cfg.Edge.Alpha),
				Proportion: pick(cmd, "proportion", p.Proportion, st.cfg.Sketch.Proportion),
				Length:     pick(cmd, "length", p.Length, st.cfg.Sketch.Length),
			}
			s := pick(cmd, "seed", seed, st.cfg.Sketch.Seed)

			var out *raster.Image
			err = stage(logging.ComponentSketch, "sketch", func() error {
				out, err = sketch.Render(img, params, sketch.WithSeed(s))

				return err
			})
			if err != nil {
				return err
			}
			logging.DebugWithComponent(logging.ComponentSketch, "sketch parameters",
				"threshold", params.Threshold, "alpha", params.Alpha,
				"proportion", params.Proportion, "length", params.Length, "seed", s)

			return st.store(args[1], out)
		},
	}
	cmd.Flags().Float64Var(&p.Threshold, "threshold", 20, "Minimum gradient magnitude")
	cmd.Flags().Float64Var(&p.Alpha, "alpha", 20, "Sharpening strength")
	cmd.Flags().Float64Var(&p.Proportion, "proportion", 50, "Stroke probability in percent")
	cmd.Flags().Float64Var(&p.Length, "length", 100, "Stroke length in percent")
	cmd.Flags().Int64Var(&seed, "seed", sketch.DefaultSeed, "Random seed")

	return cmd
}
