package main

import (
	"fmt"

	"github.com/Noel-Research-Group/NRG-bibliography/internal/pdf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doiCmd)
}

var doiCmd = &cobra.Command{
	Use:   "doi <file.pdf>",
	Short: "Extract the DOI from an article PDF",
	Long: `Extract the DOI from an article PDF.

Scans the first pages of the PDF for a DOI pattern, for use when adding
a new paper to the bibliography.

Examples:
  nrgbib doi paper.pdf
  nrgbib doi --human paper.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runDOI,
}

// DOIResult is the JSON output of the doi command.
type DOIResult struct {
	DOI  string `json:"doi"`
	File string `json:"file"`
}

func runDOI(cmd *cobra.Command, args []string) error {
	path := args[0]

	doi, err := pdf.ExtractDOI(path)
	if err != nil {
		exitWithError(ExitDataError, "reading %s: %v", path, err)
	}
	if doi == "" {
		exitWithError(ExitError, "no DOI found in %s", path)
	}

	if humanOutput {
		fmt.Println(doi)
		return nil
	}
	return outputJSON(DOIResult{DOI: doi, File: path})
}
