package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Noel-Research-Group/NRG-bibliography/internal/crossref"
	"github.com/Noel-Research-Group/NRG-bibliography/internal/watch"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	// Load .env if present (for CROSSREF_MAILTO)
	_ = godotenv.Load()

	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Cross-check the bibliography against Crossref",
	Long: `Cross-check the bibliography against Crossref.

Every entry with a DOI is looked up in the Crossref works API, one
request at a time. Year, volume, issue, and pages are compared where
Crossref has a value; the stored URL only when the entry sets one.
Entries without a DOI, and entries whose lookup fails, are skipped.

A markdown report is always written. The exit status tells a scheduler
whether to alert: 0 means no differences, 1 means drift was found.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

// CheckResult summarizes a watch run.
type CheckResult struct {
	Checked int    `json:"checked"`
	Skipped int    `json:"skipped"`
	Drifted int    `json:"drifted"`
	Report  string `json:"report"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	entries := mustLoadEntries(cfg.Bibliography)

	client := crossref.NewClient(
		crossref.WithMailto(cfg.Crossref.Mailto),
		crossref.WithTimeout(cfg.Crossref.Timeout()),
	)

	res := watch.Run(cmd.Context(), client, entries)

	report := watch.BuildReport(res.Entries, time.Now())
	if err := os.WriteFile(cfg.ReportOut, []byte(report), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", cfg.ReportOut, err)
	}

	if humanOutput {
		fmt.Printf("Checked %d entries against Crossref (%d lookups skipped)\n", res.Checked, res.Skipped)
		fmt.Printf("Differences found for %d entries\n", len(res.Entries))
		fmt.Printf("Wrote %s\n", cfg.ReportOut)
	} else {
		outputJSON(CheckResult{
			Checked: res.Checked,
			Skipped: res.Skipped,
			Drifted: len(res.Entries),
			Report:  cfg.ReportOut,
		})
	}

	if res.Drifted() {
		os.Exit(ExitError) // drift found
	}
	return nil
}
