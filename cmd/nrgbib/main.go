// Package main provides the nrgbib CLI entry point.
package main

import (
	"os"

	"github.com/Noel-Research-Group/NRG-bibliography/internal/config"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// configPath names the YAML configuration file.
var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nrgbib",
	Short: "Build and watch the group publication list",
	Long: `nrgbib maintains the Noël Research Group publication list.

It renders publications.bib into the HTML list published on the group
website, and cross-checks the local bibliography against Crossref so
metadata drift is caught before it reaches the page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "Path to the configuration file")
	rootCmd.Version = Version
}
