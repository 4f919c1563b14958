package watch

import (
	"context"

	"github.com/Noel-Research-Group/NRG-bibliography/internal/bib"
	"github.com/Noel-Research-Group/NRG-bibliography/internal/crossref"
)

// Lookuper fetches the catalog record for a DOI. *crossref.Client
// satisfies it; tests substitute a server-backed or failing client.
type Lookuper interface {
	GetWork(ctx context.Context, doi string) (*crossref.Work, error)
}

// Result summarizes one watch pass over the bibliography.
type Result struct {
	Checked int          // entries compared against the catalog
	Skipped int          // DOI-bearing entries whose lookup failed
	Entries []EntryDiffs // entries with at least one differing field
}

// Drifted reports whether any differences were found across the run,
// the condition a scheduler alerts on.
func (r Result) Drifted() bool { return len(r.Entries) > 0 }

// Run compares every DOI-bearing entry against the catalog, one lookup
// at a time in input order. Entries without a DOI never trigger a
// lookup; an entry whose lookup fails is skipped without aborting the
// pass.
func Run(ctx context.Context, client Lookuper, entries []bib.Entry) Result {
	var res Result
	for _, e := range entries {
		if e.DOI == "" {
			continue
		}
		work, err := client.GetWork(ctx, e.DOI)
		if err != nil {
			res.Skipped++
			continue
		}
		res.Checked++
		if diffs := Compare(e, work); len(diffs) > 0 {
			res.Entries = append(res.Entries, EntryDiffs{Key: e.Key, Diffs: diffs})
		}
	}
	return res
}
