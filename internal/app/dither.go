package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixlath/diffusion"
	"github.com/katalvlaran/pixlath/imageio"
	"github.com/katalvlaran/pixlath/internal/logging"
	"github.com/katalvlaran/pixlath/raster"
)

// Palette dithering engines.
const (
	engineNative    = "native"
	engineReference = "reference"
)

func newDitherCmd(st *state) *cobra.Command {
	var (
		gray      bool
		threshold float64
		margin    int
	)
	cmd := &cobra.Command{
		Use:   "dither IN OUT",
		Short: "Binary Floyd–Steinberg dithering, each channel on its own",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			channels := raster.Color
			if gray {
				channels = raster.Gray
			}
			img, err := st.load(args[0], channels)
			if err != nil {
				return err
			}
			opts := []diffusion.Option{
				diffusion.WithThreshold(pick(cmd, "threshold", threshold, st.cfg.Dither.Threshold)),
				diffusion.WithMargin(pick(cmd, "margin", margin, st.cfg.Dither.Margin)),
			}

			var out *raster.Image
			err = stage(logging.ComponentDither, "dither", func() error {
				out, err = diffusion.Binary(img, opts...)

				return err
			})
			if err != nil {
				return err
			}

			return st.store(args[1], out)
		},
	}
	cmd.Flags().BoolVar(&gray, "gray", false, "Convert to a single gray plane first")
	cmd.Flags().Float64Var(&threshold, "threshold", diffusion.DefaultThreshold, "Levels above this become 255")
	cmd.Flags().IntVar(&margin, "margin", diffusion.DefaultMargin, "Width of the untouched border ring")

	return cmd
}

func newPaletteCmd(st *state) *cobra.Command {
	var (
		name   string
		engine string
		margin int
	)
	cmd := &cobra.Command{
		Use:   "palette IN OUT",
		Short: "Floyd–Steinberg dithering against a color palette",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := st.cfg.Palette(name)
			if err != nil {
				return fmt.Errorf("%w (known: %v)", err, st.cfg.PaletteNames())
			}
			img, err := st.load(args[0], raster.Color)
			if err != nil {
				return err
			}

			var out *raster.Image
			err = stage(logging.ComponentDither, "palette", func() error {
				switch engine {
				case engineNative:
					out, err = diffusion.ToPalette(img, p,
						diffusion.WithMargin(pick(cmd, "margin", margin, st.cfg.Dither.Margin)))
				case engineReference:
					out, err = imageio.ReferenceDither(img, p)
				default:
					err = fmt.Errorf("unknown engine %q", engine)
				}

				return err
			})
			if err != nil {
				return err
			}
			logging.DebugWithComponent(logging.ComponentDither, "palette applied",
				"palette", name, "colors", len(p), "engine", engine)

			return st.store(args[1], out)
		},
	}
	cmd.Flags().StringVarP(&name, "palette", "p", "additive", "Preset (additive, subtractive) or a palette from the config file")
	cmd.Flags().StringVar(&engine, "engine", engineNative, "native or reference")
	cmd.Flags().IntVar(&margin, "margin", diffusion.DefaultMargin, "Width of the untouched border ring (native engine)")

	return cmd
}

// pick returns the flag value when the user set it, the configured value
// otherwise.
func pick[T any](cmd *cobra.Command, flag string, flagValue, configured T) T {
	if cmd.Flags().Changed(flag) {
		return flagValue
	}

	return configured
}
