package bib

import (
	"regexp"
	"strings"

	"github.com/Noel-Research-Group/NRG-bibliography/internal/latex"
)

// givenSplit breaks a given-name string into tokens for initials.
// Hyphenated names produce one initial per part (Jean-Pierre -> J. P.).
var givenSplit = regexp.MustCompile(`[\s\-]+`)

// FormatAuthor converts "Last, First Middle" or "First Middle Last" into
// the house form "Last, F. M.". A single bare token is returned as-is.
func FormatAuthor(name string) string {
	name = strings.Trim(strings.TrimSpace(latex.Decode(name)), ",")
	if name == "" {
		return ""
	}

	var last, given string
	if i := strings.Index(name, ","); i >= 0 {
		last = strings.TrimSpace(name[:i])
		given = strings.TrimSpace(name[i+1:])
	} else {
		bits := strings.Fields(name)
		if len(bits) == 1 {
			return bits[0]
		}
		last = bits[len(bits)-1]
		given = strings.Join(bits[:len(bits)-1], " ")
	}

	var initials []string
	for _, tok := range givenSplit.Split(given, -1) {
		tok = strings.Trim(tok, ".,")
		if tok == "" {
			continue
		}
		r := []rune(tok)
		initials = append(initials, strings.ToUpper(string(r[0]))+".")
	}

	if len(initials) == 0 {
		return last
	}
	return last + ", " + strings.Join(initials, " ")
}

// FormatAuthorList formats a BibTeX author field (names separated by the
// literal " and ") in the house style: one author bare, two joined with
// "and", three or more semicolon-joined with " and " before the last.
func FormatAuthorList(field string) string {
	var authors []string
	for _, raw := range strings.Split(field, " and ") {
		if a := FormatAuthor(raw); a != "" {
			authors = append(authors, a)
		}
	}

	switch len(authors) {
	case 0:
		return ""
	case 1:
		return authors[0]
	case 2:
		return authors[0] + " and " + authors[1]
	}
	return strings.Join(authors[:len(authors)-1], "; ") + " and " + authors[len(authors)-1]
}
