// Package render builds the publication-list HTML document.
package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Noel-Research-Group/NRG-bibliography/internal/bib"
	"github.com/Noel-Research-Group/NRG-bibliography/internal/latex"
)

// Style selects the house HTML format.
type Style string

const (
	// StyleCSL is the canonical format published on the group website:
	// csl-entry divs grouped under wpmgrouptitle year headings.
	StyleCSL Style = "csl"
	// StyleLegacy is the older pub-entry format, kept selectable for
	// pages that still carry the old stylesheet.
	StyleLegacy Style = "legacy"
)

// ValidStyles lists the supported style names.
var ValidStyles = []string{string(StyleCSL), string(StyleLegacy)}

// ParseStyle validates a style name, defaulting empty to StyleCSL.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "", string(StyleCSL):
		return StyleCSL, nil
	case string(StyleLegacy):
		return StyleLegacy, nil
	}
	return "", fmt.Errorf("invalid style %q: must be csl or legacy", s)
}

const cslTemplate = `<div class="csl-bib-body">
{{range .Sections}}<h2 class="wpmgrouptitle">{{.Year}}</h2>
{{range .Entries}}{{.}}
{{end}}{{end}}</div>`

const legacyTemplate = `<div class="publication-list">
{{range .Sections}}<h3 class="pub-year">{{.Year}}</h3>
{{range .Entries}}{{.}}
{{end}}{{end}}</div>`

// docTemplates is parsed at init time to fail fast on template errors.
var docTemplates = map[Style]*template.Template{
	StyleCSL:    template.Must(template.New("csl").Parse(cslTemplate)),
	StyleLegacy: template.Must(template.New("legacy").Parse(legacyTemplate)),
}

var (
	spaceBeforeComma = regexp.MustCompile(`\s+,`)
	doubledComma     = regexp.MustCompile(`,\s*,`)
)

// EntryHTML renders one entry fragment.
//
// CSL pattern:
//
//	Authors. Title <em> Journal</em>, <strong>YEAR</strong>, <em>VOLUME,</em>
//	PAGES, DOI: <a href="...">DOI</a> (For the preprint version, see <a ...>DOI</a>)
func EntryHTML(e bib.Entry, style Style) string {
	authors := html.EscapeString(bib.FormatAuthorList(e.Authors))
	title := html.EscapeString(latex.Decode(e.Title))
	journal := html.EscapeString(latex.Decode(e.Journal))
	volume := html.EscapeString(e.Volume)
	pages := html.EscapeString(bib.NormalizePages(e.Pages))

	year := ""
	if e.Year != 0 {
		year = strconv.Itoa(e.Year)
	}

	var parts []string
	if authors != "" {
		parts = append(parts, authors)
	}
	if title != "" {
		parts = append(parts, title)
	}

	// Venue is italic, with a leading space inside the marker in the CSL
	// style to match the published pages: <em> Matter</em>
	if journal != "" {
		if style == StyleLegacy {
			parts = append(parts, "<i>"+journal+"</i>,")
		} else {
			parts = append(parts, "<em> "+journal+"</em>,")
		}
	}
	if year != "" {
		if style == StyleLegacy {
			parts = append(parts, year+", ")
		} else {
			parts = append(parts, "<strong>"+year+"</strong>, ")
		}
	}

	// Volume keeps its trailing comma inside the emphasis marker: <em>7, </em>
	if volume != "" {
		if style == StyleLegacy {
			parts = append(parts, "<i>"+volume+"</i>, ")
		} else {
			parts = append(parts, "<em>"+volume+", </em>")
		}
	}
	if pages != "" {
		parts = append(parts, pages+", ")
	}

	if e.DOI != "" {
		label := "DOI: "
		if style == StyleLegacy {
			label = "doi: "
		}
		parts = append(parts, label+anchor(e.DOI, doiHref(e.DOI, e.URL)))
	}

	// Optional-field omission leaves " ," and ",," artifacts behind.
	text := strings.TrimSpace(strings.Join(parts, " "))
	text = spaceBeforeComma.ReplaceAllString(text, ",")
	text = doubledComma.ReplaceAllString(text, ",")

	if e.PreprintDOI != "" {
		text += " (For the preprint version, see " +
			anchor(e.PreprintDOI, "https://doi.org/"+e.PreprintDOI) + ")"
	}

	if style == StyleLegacy {
		return `<p class="pub-entry">` + text + `</p>`
	}
	return `<div class="csl-entry">` + text + `</div>`
}

// doiHref picks the anchor target for a DOI. A stored URL wins when it is
// a DOI landing page containing the DOI itself (e.g. Science article URLs);
// everything else goes through the canonical resolver.
func doiHref(doi, url string) string {
	url = strings.TrimSpace(url)
	lower := strings.ToLower(url)
	if url != "" && strings.Contains(lower, strings.ToLower(doi)) &&
		(strings.Contains(lower, "doi") || strings.Contains(url, "10.")) {
		return url
	}
	return "https://doi.org/" + doi
}

func anchor(doi, href string) string {
	return `<a href="` + html.EscapeString(href) + `">` + html.EscapeString(doi) + `</a>`
}

type section struct {
	Year    int
	Entries []template.HTML
}

// Document renders the full grouped publication list: entries sorted
// newest first (full date, then case-folded title), grouped into year
// sections in descending order. Entries with no year are left out of
// every section.
func Document(entries []bib.Entry, style Style) (string, error) {
	tmpl, ok := docTemplates[style]
	if !ok {
		return "", fmt.Errorf("invalid style %q", style)
	}

	sorted := make([]bib.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i].SortTime(), sorted[j].SortTime()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
	})

	byYear := make(map[int][]template.HTML)
	var years []int
	for _, e := range sorted {
		if e.Year == 0 {
			continue
		}
		if _, seen := byYear[e.Year]; !seen {
			years = append(years, e.Year)
		}
		byYear[e.Year] = append(byYear[e.Year], template.HTML(EntryHTML(e, style)))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	data := struct{ Sections []section }{}
	for _, y := range years {
		data.Sections = append(data.Sections, section{Year: y, Entries: byYear[y]})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
