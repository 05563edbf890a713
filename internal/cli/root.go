// Package cli defines the photoviewer command line.
package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"photoviewer/internal/config"
)

// LaunchFunc starts the viewer with the resolved configuration and the
// files or folders given on the command line.
type LaunchFunc func(cfg config.Config, paths []string) error

func cliLogger(msg string) {
	log.Printf("[photoviewer] %s", msg)
}

// NewRootCmd creates the root command. The launch function is injected so
// tests can check flag handling without opening a window.
func NewRootCmd(launch LaunchFunc) *cobra.Command {
	var (
		configPath string
		envFile    string
		fullscreen bool
		interval   float64
		thumbSize  int
	)

	rootCmd := &cobra.Command{
		Use:   "photoviewer [file or folder...]",
		Short: "Photo Viewer - browse pictures and run a slide show",
		Long: `Photo Viewer shows pictures in a scrollable view with a strip of
thumbnails, previous/next navigation with wraparound, an auto-advancing
slide show, zoom and fullscreen.

Files and folders given as arguments are loaded at start; folders contribute
their .png, .jpg, .jpeg and .gif files in natural order.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Options{Path: configPath, EnvFile: envFile, Logger: cliLogger})
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			flags := cmd.Flags()
			if flags.Changed("fullscreen") {
				cfg.Fullscreen = fullscreen
			}
			if flags.Changed("interval") {
				cfg.SlideshowSeconds = interval
			}
			if flags.Changed("thumb-size") {
				cfg.ThumbnailSize = thumbSize
			}
			cfg.Validate(cliLogger)
			return launch(cfg, args)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file (default: user config dir)")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "Path to a .env file with PHOTOVIEWER_* settings (default: ./.env)")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "Start in fullscreen mode")
	rootCmd.Flags().Float64Var(&interval, "interval", config.Default().SlideshowSeconds, "Slide show interval in seconds (0.5 to 15)")
	rootCmd.Flags().IntVar(&thumbSize, "thumb-size", config.Default().ThumbnailSize, "Thumbnail size in pixels")

	return rootCmd
}
