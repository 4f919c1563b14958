package main

import (
	"fmt"
	"os"

	"github.com/Noel-Research-Group/NRG-bibliography/internal/render"
	"github.com/spf13/cobra"
)

var (
	buildStyle string
	buildOut   string
)

func init() {
	buildCmd.Flags().StringVar(&buildStyle, "style", "", "Output style: csl or legacy (overrides config)")
	buildCmd.Flags().StringVar(&buildOut, "out", "", "Output path (overrides config)")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the bibliography to the publication list HTML",
	Long: `Render the bibliography to the publication list HTML.

Entries are sorted newest first, grouped under one heading per year,
and written as a single document ready to paste into the website.

Examples:
  nrgbib build
  nrgbib build --style legacy --out old-site.html`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	if buildStyle != "" {
		cfg.Style = buildStyle
	}
	if buildOut != "" {
		cfg.HTMLOut = buildOut
	}

	style, err := render.ParseStyle(cfg.Style)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	entries := mustLoadEntries(cfg.Bibliography)

	doc, err := render.Document(entries, style)
	if err != nil {
		exitWithError(ExitError, "rendering publication list: %v", err)
	}

	if err := os.WriteFile(cfg.HTMLOut, []byte(doc+"\n"), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", cfg.HTMLOut, err)
	}

	fmt.Printf("Wrote %s\n", cfg.HTMLOut)
	return nil
}
