package main

import (
	"fmt"

	"github.com/Noel-Research-Group/NRG-bibliography/internal/bib"
	"github.com/spf13/cobra"
)

var listLimit int

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum entries to show (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the normalized bibliography entries",
	Long: `List the normalized bibliography entries.

Examples:
  nrgbib list
  nrgbib list --human --limit 20`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	entries := mustLoadEntries(cfg.Bibliography)

	total := len(entries)
	if listLimit > 0 && listLimit < len(entries) {
		entries = entries[:listLimit]
	}

	if humanOutput {
		if len(entries) == 0 {
			fmt.Println("No entries in bibliography")
			return nil
		}
		if len(entries) < total {
			fmt.Printf("%d entries (showing first %d):\n\n", total, len(entries))
		} else {
			fmt.Printf("%d entries:\n\n", total)
		}
		for _, e := range entries {
			fmt.Printf("  %-20s %4d  %s\n", e.Key, e.Year, truncateString(e.Title, ListTitleMaxLen))
		}
		return nil
	}

	if entries == nil {
		entries = []bib.Entry{}
	}
	return outputJSON(entries)
}
