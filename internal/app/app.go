// Package app wires the pixlath command line: configuration, logging and one
// cobra subcommand per transform.
package app

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixlath/internal/config"
	"github.com/katalvlaran/pixlath/internal/logging"
)

// state is shared by the root command and its subcommands.
type state struct {
	configPath string
	level      string
	maxSize    int
	cfg        config.Config
}

// NewRootCommand builds the pixlath command tree.
func NewRootCommand() *cobra.Command {
	st := &state{}
	root := &cobra.Command{
		Use:           "pixlath",
		Short:         "Pixel-level raster transforms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&st.configPath, "config", "c", "", "Configuration file (YAML)")
	root.PersistentFlags().StringVarP(&st.level, "level", "l", "", "Log level")
	root.PersistentFlags().IntVar(&st.maxSize, "max-size", 0, "Downscale inputs to fit this many pixels per side (0 keeps the size)")

	root.AddCommand(
		newEqualizeCmd(st),
		newHistogramCmd(st),
		newDitherCmd(st),
		newPaletteCmd(st),
		newSobelCmd(st),
		newGradientCmd(st),
		newEdgesCmd(st),
		newSketchCmd(st),
		newSmoothCmd(st),
		newSharpenCmd(st),
	)

	return root
}

// Execute runs the command tree and logs a failure.
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil {
		logging.ErrorWithComponent(logging.ComponentStartup, "command failed", logging.Err(err))
	}

	return err
}

func (st *state) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(st.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("level") {
		cfg.LogLevel = st.level
	}
	if cmd.Flags().Changed("max-size") {
		cfg.MaxSize = st.maxSize
	}
	st.cfg = cfg

	lvl, levelErr := logging.ParseLevel(cfg.LogLevel)
	if levelErr != nil {
		lvl = slog.LevelInfo
	}
	logging.Setup(cmd.ErrOrStderr(), lvl, cfg.NoColor)
	if levelErr != nil {
		logging.WarnWithComponent(logging.ComponentConfig, "unknown log level, using info",
			"value", cfg.LogLevel)
	}
	logging.DebugWithComponent(logging.ComponentConfig, "configuration loaded",
		"path", st.configPath, "log_level", lvl, "max_size", cfg.MaxSize)

	return nil
}

// stage runs fn and logs its duration under component.
func stage(component, op string, fn func() error) error {
	start := time.Now()
	if err := fn(); err != nil {
		return err
	}
	logging.InfoWithComponent(component, op, "elapsed", time.Since(start))

	return nil
}
