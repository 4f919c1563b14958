package bib

import "testing"

func TestFirstDOI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare doi", "10.1021/acs.oprd.3c00100", "10.1021/acs.oprd.3c00100"},
		{"doi inside url", "https://doi.org/10.1126/science.abc1234", "10.1126/science.abc1234"},
		{"doi with surrounding text", "see 10.26434/chemrxiv-2023-abcde for details", "10.26434/chemrxiv-2023-abcde"},
		{"stops at quote", `10.1002/anie.202200000" trailing`, "10.1002/anie.202200000"},
		{"stops at angle bracket", "10.1039/d3gc01000a<br>", "10.1039/d3gc01000a"},
		{"no doi", "not a doi", ""},
		{"short prefix rejected", "10.123/abc", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstDOI(tt.in); got != tt.want {
				t.Errorf("FirstDOI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2023", 2023},
		{"1998", 1998},
		{"c. 2021 print", 2021},
		{"1850", 0},  // before the 19xx/20xx window
		{"20235", 0}, // not a 4-digit token
		{"", 0},
		{"n.d.", 0},
	}
	for _, tt := range tests {
		if got := ParseYear(tt.in); got != tt.want {
			t.Errorf("ParseYear(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePages(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123--130", "123-130"},
		{"123-130", "123-130"},
		{"e202300123", "e202300123"},
		{"  105--110  ", "105-110"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizePages(tt.in); got != tt.want {
			t.Errorf("NormalizePages(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want PublicationDate
	}{
		{
			"full date field",
			Record{Fields: map[string]string{"date": "2024-06-15"}},
			PublicationDate{Year: 2024, Month: 6, Day: 15},
		},
		{
			"year-month date field",
			Record{Fields: map[string]string{"date": "2024-06"}},
			PublicationDate{Year: 2024, Month: 6, Day: 1},
		},
		{
			"date field wins over year fields",
			Record{Fields: map[string]string{"date": "2023-02-01", "year": "2022"}},
			PublicationDate{Year: 2023, Month: 2, Day: 1},
		},
		{
			"year month day fields",
			Record{Fields: map[string]string{"year": "2023", "month": "6", "day": "15"}},
			PublicationDate{Year: 2023, Month: 6, Day: 15},
		},
		{
			"month name",
			Record{Fields: map[string]string{"year": "2023", "month": "June"}},
			PublicationDate{Year: 2023, Month: 6, Day: 1},
		},
		{
			"month abbreviation with period",
			Record{Fields: map[string]string{"year": "2023", "month": "sep."}},
			PublicationDate{Year: 2023, Month: 9, Day: 1},
		},
		{
			"unrecognized month defaults to january",
			Record{Fields: map[string]string{"year": "2023", "month": "frimaire"}},
			PublicationDate{Year: 2023, Month: 1, Day: 1},
		},
		{
			"month clamped into range",
			Record{Fields: map[string]string{"year": "2023", "month": "13"}},
			PublicationDate{Year: 2023, Month: 12, Day: 1},
		},
		{
			"day clamped into range",
			Record{Fields: map[string]string{"year": "2023", "month": "2", "day": "45"}},
			PublicationDate{Year: 2023, Month: 2, Day: 31},
		},
		{
			"invalid day defaults to 1",
			Record{Fields: map[string]string{"year": "2023", "day": "soon"}},
			PublicationDate{Year: 2023, Month: 1, Day: 1},
		},
		{
			"no year at all",
			Record{Fields: map[string]string{"month": "6"}},
			PublicationDate{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDate(tt.rec); got != tt.want {
				t.Errorf("ParseDate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInferJournal(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		doi  string
		want string
	}{
		{
			"explicit journal",
			Record{Fields: map[string]string{"journal": "Nature Chemistry"}},
			"10.1038/s41557-023-01000-0",
			"Nature Chemistry",
		},
		{
			"booktitle fallback",
			Record{Fields: map[string]string{"booktitle": "Flow Chemistry Symposium"}},
			"",
			"Flow Chemistry Symposium",
		},
		{
			"howpublished fallback",
			Record{Fields: map[string]string{"howpublished": "Self-published"}},
			"",
			"Self-published",
		},
		{
			"journal wins over booktitle",
			Record{Fields: map[string]string{"journal": "Matter", "booktitle": "Conference"}},
			"",
			"Matter",
		},
		{
			"chemrxiv inferred from doi",
			Record{Fields: map[string]string{}},
			"10.26434/chemrxiv-2023-abcde",
			"ChemRxiv",
		},
		{
			"no venue",
			Record{Fields: map[string]string{}},
			"10.1021/acs.oprd.3c00100",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferJournal(tt.rec, tt.doi); got != tt.want {
				t.Errorf("InferJournal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreprintDOI(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{
			"dedicated field",
			Record{Fields: map[string]string{"preprint_doi": "10.26434/chemrxiv-2023-abcde"}},
			"10.26434/chemrxiv-2023-abcde",
		},
		{
			"dedicated field with url wrapper",
			Record{Fields: map[string]string{"preprint_doi": "https://doi.org/10.26434/chemrxiv-2023-abcde"}},
			"10.26434/chemrxiv-2023-abcde",
		},
		{
			"annotation label",
			Record{Fields: map[string]string{"annotation": "preprint_doi:10.26434/chemrxiv-2023-abcde, openaccess"}},
			"10.26434/chemrxiv-2023-abcde",
		},
		{
			"annotation label spaced",
			Record{Fields: map[string]string{"annotation": "Preprint DOI: 10.26434/chemrxiv-2023-abcde"}},
			"10.26434/chemrxiv-2023-abcde",
		},
		{
			"annotation without label",
			Record{Fields: map[string]string{"annotation": "plain note mentioning 10.1021/acs.oprd.3c00100"}},
			"",
		},
		{
			"nothing",
			Record{Fields: map[string]string{}},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreprintDOI(tt.rec); got != tt.want {
				t.Errorf("PreprintDOI() = %q, want %q", got, tt.want)
			}
		})
	}
}
