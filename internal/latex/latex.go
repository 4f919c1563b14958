// Package latex converts BibTeX/LaTeX markup into plain Unicode text.
//
// The converter handles the markup that actually shows up in bibliography
// fields: accent commands (No{\"e}l -> Noël), symbol and math macros
// (\beta -> β), and formatting commands whose argument should survive
// (\emph{via} -> via). It is total: unparseable input comes back as-is.
package latex

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// accentMarks maps LaTeX accent commands to Unicode combining marks.
// NFC normalization at the end of Decode composes them with their letter.
var accentMarks = map[string]rune{
	`"`: 0x0308, // diaeresis
	`'`: 0x0301, // acute
	"`": 0x0300, // grave
	`^`: 0x0302, // circumflex
	`~`: 0x0303, // tilde
	`=`: 0x0304, // macron
	`.`: 0x0307, // dot above
	"u": 0x0306, // breve
	"v": 0x030C, // caron
	"c": 0x0327, // cedilla
	"H": 0x030B, // double acute
	"k": 0x0328, // ogonek
	"r": 0x030A, // ring above
	"b": 0x0331, // bar below
	"d": 0x0323, // dot below
}

// symbolNames maps letter-named commands to their text replacement.
// Anything not listed here is treated as a formatting command and dropped,
// leaving its braced argument in place.
var symbolNames = map[string]string{
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ",
	"epsilon": "ε", "varepsilon": "ε", "zeta": "ζ", "eta": "η",
	"theta": "θ", "iota": "ι", "kappa": "κ", "lambda": "λ",
	"mu": "μ", "nu": "ν", "xi": "ξ", "pi": "π", "rho": "ρ",
	"sigma": "σ", "tau": "τ", "upsilon": "υ", "phi": "φ",
	"varphi": "φ", "chi": "χ", "psi": "ψ", "omega": "ω",
	"Gamma": "Γ", "Delta": "Δ", "Theta": "Θ", "Lambda": "Λ",
	"Xi": "Ξ", "Pi": "Π", "Sigma": "Σ", "Phi": "Φ",
	"Psi": "Ψ", "Omega": "Ω",

	"times": "×", "pm": "±", "mp": "∓", "cdot": "·",
	"degree": "°", "deg": "°", "micro": "µ", "prime": "′",
	"rightarrow": "→", "leftarrow": "←",
	"textendash": "–", "textemdash": "—",
	"textquotesingle": "'", "textasciitilde": "~",
	"ldots": "…", "dots": "…",

	"aa": "å", "AA": "Å", "ae": "æ", "AE": "Æ",
	"oe": "œ", "OE": "Œ", "ss": "ß",
	"o": "ø", "O": "Ø", "l": "ł", "L": "Ł",
	"i": "ı", "j": "ȷ",
}

var (
	// Accents written with a non-letter command char: \"o, \'e, \'{e}, {\"o}.
	symbolAccentPattern = regexp.MustCompile("\\\\([\"'`^~=.])\\{?\\\\?([a-zA-Z])\\}?")
	// Accents written with a letter command char need braces: \c{c}, \v{s}.
	letterAccentPattern = regexp.MustCompile(`\\([uvcHkrbd])\s*\{\s*([a-zA-Z])\s*\}`)
	// Any remaining letter-named command: symbol macro or formatting command.
	commandPattern = regexp.MustCompile(`\\([a-zA-Z]+)`)
	// Backslash-escaped literal characters: \& \% \_ ...
	escapedCharPattern = regexp.MustCompile(`\\([%&#_${}])`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Decode converts LaTeX markup in s to plain Unicode text.
// BibTeX often wraps fragments in braces to preserve capitalization;
// stray braces are removed after conversion and whitespace is collapsed.
func Decode(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	out := decodeAccents(s)

	out = commandPattern.ReplaceAllStringFunc(out, func(m string) string {
		if sym, ok := symbolNames[m[1:]]; ok {
			return sym
		}
		return "" // formatting command: keep its argument, drop the name
	})

	out = escapedCharPattern.ReplaceAllString(out, "$1")
	out = strings.NewReplacer(`\,`, " ", `\;`, " ", `\ `, " ").Replace(out)

	// Math delimiters, grouping braces, and leftover backslashes.
	out = strings.NewReplacer("$", "", "{", "", "}", "", `\`, "").Replace(out)

	out = strings.TrimSpace(whitespacePattern.ReplaceAllString(out, " "))
	if out == "" {
		// Decoding swallowed everything; the original is more useful.
		return s
	}
	return norm.NFC.String(out)
}

func decodeAccents(s string) string {
	s = symbolAccentPattern.ReplaceAllStringFunc(s, func(m string) string {
		sub := symbolAccentPattern.FindStringSubmatch(m)
		return applyAccent(sub[1], sub[2])
	})
	return letterAccentPattern.ReplaceAllStringFunc(s, func(m string) string {
		sub := letterAccentPattern.FindStringSubmatch(m)
		return applyAccent(sub[1], sub[2])
	})
}

func applyAccent(cmd, letter string) string {
	mark, ok := accentMarks[cmd]
	if !ok {
		return letter
	}
	return letter + string(mark)
}
