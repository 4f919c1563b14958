package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Noel-Research-Group/NRG-bibliography/internal/bib"
	"github.com/Noel-Research-Group/NRG-bibliography/internal/config"
)

// ListTitleMaxLen bounds titles in list command output.
const ListTitleMaxLen = 60

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// mustLoadConfig loads the configuration or exits with ExitConfigError.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return cfg
}

// mustLoadEntries loads the bibliography or exits with ExitDataError.
func mustLoadEntries(path string) []bib.Entry {
	entries, err := bib.LoadEntries(path)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	return entries
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
