package bib

import "time"

// Entry is a normalized bibliography entry. It is built once from a raw
// record and never mutated afterwards. Missing fields hold their zero
// value; no field's absence aborts construction.
type Entry struct {
	Key         string          `json:"key"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Authors     string          `json:"authors"` // raw author field, formatted at render time
	Journal     string          `json:"journal,omitempty"`
	Year        int             `json:"year"` // 0 = unknown
	Volume      string          `json:"volume,omitempty"`
	Issue       string          `json:"issue,omitempty"`
	Pages       string          `json:"pages,omitempty"` // as written; normalized where compared or rendered
	DOI         string          `json:"doi,omitempty"`
	URL         string          `json:"url,omitempty"`
	PreprintDOI string          `json:"preprint_doi,omitempty"`
	Published   PublicationDate `json:"published"`
}

// PublicationDate is a resolved publication date with optional month and day.
type PublicationDate struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"` // 1-12, 0 if unknown
	Day   int `json:"day,omitempty"`   // 1-31, 0 if unknown
}

// IsZero reports whether no date could be resolved.
func (d PublicationDate) IsZero() bool { return d.Year == 0 }

// Time returns the date as a UTC timestamp, with unknown month and day
// defaulting to January 1. The zero date maps to the zero time.
func (d PublicationDate) Time() time.Time {
	if d.Year == 0 {
		return time.Time{}
	}
	mo := d.Month
	if mo == 0 {
		mo = 1
	}
	da := d.Day
	if da == 0 {
		da = 1
	}
	return time.Date(d.Year, time.Month(mo), da, 0, 0, 0, 0, time.UTC)
}

// FromRecord builds a normalized entry from a raw record.
func FromRecord(rec Record) Entry {
	doi := FirstDOI(rec.Fields["doi"])
	return Entry{
		Key:         rec.Key,
		Type:        rec.Type,
		Title:       clean(rec.Fields["title"]),
		Authors:     clean(rec.Fields["author"]),
		Journal:     InferJournal(rec, doi),
		Year:        ParseYear(rec.Fields["year"]),
		Volume:      clean(rec.Fields["volume"]),
		Issue:       rec.Field("number", "issue"),
		Pages:       clean(rec.Fields["pages"]),
		DOI:         doi,
		URL:         clean(rec.Fields["url"]),
		PreprintDOI: PreprintDOI(rec),
		Published:   ParseDate(rec),
	}
}

// LoadEntries loads a BibTeX file and normalizes every record, in file order.
func LoadEntries(path string) ([]Entry, error) {
	records, err := LoadRecords(path)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(records))
	for i, rec := range records {
		entries[i] = FromRecord(rec)
	}
	return entries, nil
}

// SortTime returns the timestamp used for newest-first ordering: the full
// publication date when resolved, else January 1 of the entry's year, else
// a fixed pre-modern fallback so undated entries sink to the bottom.
func (e Entry) SortTime() time.Time {
	if !e.Published.IsZero() {
		return e.Published.Time()
	}
	if e.Year != 0 {
		return time.Date(e.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
}
