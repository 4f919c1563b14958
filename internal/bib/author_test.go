package bib

import "testing"

func TestFormatAuthor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"last comma first", "Noël, Timothy", "Noël, T."},
		{"last comma first middle", "Smith, John Robert", "Smith, J. R."},
		{"first last", "Timothy Noël", "Noël, T."},
		{"first middle last", "John Robert Smith", "Smith, J. R."},
		{"hyphenated given name", "Jean-Pierre Dupont", "Dupont, J. P."},
		{"already initials", "Smith, J. R.", "Smith, J. R."},
		{"latex accents decoded", `No{\"e}l, Timothy`, "Noël, T."},
		{"single token", "Aristotle", "Aristotle"},
		{"trailing comma", "Smith, John,", "Smith, J."},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAuthor(tt.in); got != tt.want {
				t.Errorf("FormatAuthor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatAuthorList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"single author",
			"Smith, John",
			"Smith, J.",
		},
		{
			"two authors",
			"Smith, John and Doe, Jane",
			"Smith, J. and Doe, J.",
		},
		{
			"three authors use semicolons",
			"Smith, John and Doe, Jane and Brown, Alice Mary",
			"Smith, J.; Doe, J. and Brown, A. M.",
		},
		{
			"five authors",
			"A, Q and B, R and C, S and D, T and E, U",
			"A, Q.; B, R.; C, S.; D, T. and E, U.",
		},
		{
			"empty segments dropped",
			"Smith, John and  and Doe, Jane",
			"Smith, J. and Doe, J.",
		},
		{
			"empty field",
			"",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAuthorList(tt.in); got != tt.want {
				t.Errorf("FormatAuthorList(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
