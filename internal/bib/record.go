// Package bib loads BibTeX records and normalizes them into entries.
package bib

import (
	"fmt"
	"os"
	"strings"

	"github.com/nickng/bibtex"
)

// Record is one raw bibliography entry: citation key, entry type, and a
// flat field map. Field names are lowercased so lookups are
// case-insensitive regardless of how the .bib file spells them.
type Record struct {
	Key    string
	Type   string
	Fields map[string]string
}

// Field returns the first non-empty value among the named fields.
// This is the bounded fallback chain used for venue and issue lookups.
func (r Record) Field(names ...string) string {
	for _, n := range names {
		if v := strings.TrimSpace(r.Fields[n]); v != "" {
			return v
		}
	}
	return ""
}

// LoadRecords parses a BibTeX file into raw records, preserving file order.
func LoadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bibliography: %w", err)
	}
	defer f.Close()

	parsed, err := bibtex.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	records := make([]Record, 0, len(parsed.Entries))
	for _, e := range parsed.Entries {
		fields := make(map[string]string, len(e.Fields))
		for name, val := range e.Fields {
			fields[strings.ToLower(name)] = strings.TrimSpace(val.String())
		}
		records = append(records, Record{
			Key:    strings.TrimSpace(e.CiteName),
			Type:   strings.ToLower(strings.TrimSpace(e.Type)),
			Fields: fields,
		})
	}
	return records, nil
}
