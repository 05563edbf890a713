// Main entry point for the photo viewer
package main

import (
	"fmt"
	"os"

	"photoviewer/internal/cli"
	"photoviewer/internal/config"
	"photoviewer/internal/ui"
)

func main() {
	rootCmd := cli.NewRootCmd(func(cfg config.Config, paths []string) error {
		ui.CreateApplication(cfg, paths)
		return nil
	})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
