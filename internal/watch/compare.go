// Package watch compares local bibliography entries against Crossref
// records and reports metadata drift.
package watch

import (
	"strconv"
	"strings"

	"github.com/Noel-Research-Group/NRG-bibliography/internal/bib"
	"github.com/Noel-Research-Group/NRG-bibliography/internal/crossref"
)

// Diff is one field-level disagreement between the local bibliography
// and the Crossref record.
type Diff struct {
	Field  string `json:"field"`
	Local  string `json:"local"`
	Remote string `json:"remote"`
}

// EntryDiffs collects the diffs for one entry.
type EntryDiffs struct {
	Key   string `json:"key"`
	Diffs []Diff `json:"diffs"`
}

// Compare flags the fields where Crossref has a non-empty value that
// disagrees with the local entry after trimming. The stored URL is only
// compared when the local entry actually sets one. Diffs carry the
// local value exactly as the bibliography has it.
func Compare(e bib.Entry, w *crossref.Work) []Diff {
	var diffs []Diff
	check := func(field, local, remote string) {
		remote = strings.TrimSpace(remote)
		if remote != "" && strings.TrimSpace(local) != remote {
			diffs = append(diffs, Diff{Field: field, Local: local, Remote: remote})
		}
	}

	check("year", yearString(e.Year), w.IssuedYear())
	check("volume", e.Volume, w.Volume)
	check("issue", e.Issue, w.Issue)
	check("pages", bib.NormalizePages(e.Pages), bib.NormalizePages(w.Page))

	if e.URL != "" {
		check("url", e.URL, w.URL)
	}

	return diffs
}

func yearString(y int) string {
	if y == 0 {
		return ""
	}
	return strconv.Itoa(y)
}
