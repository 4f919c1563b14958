package bib

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// DOI pattern: 10.XXXX/suffix where XXXX is 4-9 digits and the suffix
	// runs to the first whitespace, quote, or angle bracket.
	doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s"<>]+`)

	yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	// Leading YYYY-MM or YYYY-MM-DD of a biblatex date field.
	isoDatePattern = regexp.MustCompile(`^\s*(\d{4})-(\d{2})(?:-(\d{2}))?`)

	// preprint_doi:10.26434/... label inside a free-text annotation.
	preprintDOIPattern = regexp.MustCompile(`(?i)preprint[_\s]?doi\s*:\s*(10\.\d{4,9}/[^\s,;]+)`)
)

// monthNumbers resolves BibTeX month names and abbreviations, mirroring
// the parser convention of predefined month strings.
var monthNumbers = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

func clean(s string) string { return strings.TrimSpace(s) }

// FirstDOI returns the first DOI found in s, or "" when there is none.
func FirstDOI(s string) string {
	return doiPattern.FindString(clean(s))
}

// ParseYear returns the first plausible 4-digit year in s, or 0.
func ParseYear(s string) int {
	m := yearPattern.FindString(clean(s))
	if m == "" {
		return 0
	}
	y, _ := strconv.Atoi(m)
	return y
}

// NormalizePages converts the BibTeX double-hyphen page range separator
// to a single hyphen. Anything else passes through untouched.
func NormalizePages(pages string) string {
	pages = clean(pages)
	if pages == "" {
		return ""
	}
	return strings.ReplaceAll(pages, "--", "-")
}

// ParseDate resolves a publication date from a record. It prefers an
// explicit date field (YYYY-MM-DD or YYYY-MM), then composes one from
// year/month/day fields. Month and day out of range are clamped; a
// record with no determinable year yields the zero date.
func ParseDate(rec Record) PublicationDate {
	if d := clean(rec.Fields["date"]); d != "" {
		if m := isoDatePattern.FindStringSubmatch(d); m != nil {
			y, _ := strconv.Atoi(m[1])
			mo, _ := strconv.Atoi(m[2])
			da := 1
			if m[3] != "" {
				da, _ = strconv.Atoi(m[3])
			}
			return PublicationDate{Year: y, Month: clampInt(mo, 1, 12), Day: clampInt(da, 1, 31)}
		}
	}

	y := ParseYear(rec.Fields["year"])
	if y == 0 {
		return PublicationDate{}
	}

	mo := 1
	if raw := clean(rec.Fields["month"]); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			mo = clampInt(n, 1, 12)
		} else if n, ok := monthNumbers[strings.ToLower(strings.Trim(raw, "."))]; ok {
			mo = n
		}
	}

	da := 1
	if raw := clean(rec.Fields["day"]); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			da = clampInt(n, 1, 31)
		}
	}

	return PublicationDate{Year: y, Month: mo, Day: da}
}

// InferJournal resolves the venue for a record: explicit field first
// (journal, then booktitle, then howpublished), then preprint-server
// inference from the DOI prefix.
func InferJournal(rec Record, doi string) string {
	if j := rec.Field("journal", "booktitle", "howpublished"); j != "" {
		return j
	}
	if strings.HasPrefix(strings.ToLower(doi), "10.26434/chemrxiv") {
		return "ChemRxiv"
	}
	return ""
}

// PreprintDOI extracts the preprint DOI for a record, from a dedicated
// preprint_doi field or a labeled token in the annotation field.
func PreprintDOI(rec Record) string {
	if direct := rec.Fields["preprint_doi"]; direct != "" {
		return FirstDOI(direct)
	}
	annotation := clean(rec.Fields["annotation"])
	if annotation == "" {
		return ""
	}
	if m := preprintDOIPattern.FindStringSubmatch(annotation); m != nil {
		return m[1]
	}
	return ""
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
