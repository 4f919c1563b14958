package watch

import (
	"fmt"
	"strings"
	"time"
)

// BuildReport renders the drift report in markdown. An empty result set
// is itself a reportable outcome and produces an explicit "no
// differences" line.
func BuildReport(results []EntryDiffs, generated time.Time) string {
	var b strings.Builder
	b.WriteString("# Metadata watch report\n\n")
	fmt.Fprintf(&b, "Generated: **%s**\n\n", generated.Format("2006-01-02"))

	if len(results) == 0 {
		b.WriteString("No differences detected vs Crossref.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Found differences for **%d** item(s).\n\n", len(results))

	for _, r := range results {
		fmt.Fprintf(&b, "## `%s`\n\n", r.Key)
		for _, d := range r.Diffs {
			fmt.Fprintf(&b, "- **%s**\n", d.Field)
			fmt.Fprintf(&b, "  - bib: `%s`\n", d.Local)
			fmt.Fprintf(&b, "  - cr:  `%s`\n\n", d.Remote)
		}
	}

	return b.String()
}
