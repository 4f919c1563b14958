package pdf

import "testing"

func TestFindDOI(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"doi on its own line",
			"Some Title\n10.1021/acs.oprd.3c00100\nAuthors here",
			"10.1021/acs.oprd.3c00100",
		},
		{
			"doi in running prose with trailing period",
			"available at https://doi.org/10.1126/science.abc1234. See also",
			"10.1126/science.abc1234",
		},
		{
			"trailing close paren trimmed",
			"(DOI: 10.1039/d3gc01000a)",
			"10.1039/d3gc01000a",
		},
		{
			"too-short candidate skipped for later valid one",
			"ISSN 10.12/x but really 10.26434/chemrxiv-2023-abcde",
			"10.26434/chemrxiv-2023-abcde",
		},
		{
			"no doi",
			"plain page text with volume 380 issue 6645",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findDOI(tt.text); got != tt.want {
				t.Errorf("findDOI() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsValidDOI(t *testing.T) {
	valid := []string{"10.1021/acs.oprd.3c00100", "10.26434/chemrxiv-2023-abcde"}
	for _, doi := range valid {
		if !isValidDOI(doi) {
			t.Errorf("isValidDOI(%q) = false, want true", doi)
		}
	}
	invalid := []string{"", "10.12/x", "11.1234/abc", "10.1234567890"}
	for _, doi := range invalid {
		if isValidDOI(doi) {
			t.Errorf("isValidDOI(%q) = true, want false", doi)
		}
	}
}
