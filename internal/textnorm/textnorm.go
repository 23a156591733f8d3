// Package textnorm folds free-text names typed by operators into comparable keys.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripAccents removes combining marks: "São Paulo" -> "Sao Paulo".
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize builds the comparison key: no accents, upper case, single spaces.
func Normalize(s string) string {
	return strings.ToUpper(CollapseSpaces(StripAccents(s)))
}

// CollapseSpaces trims and reduces any whitespace run to a single space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Digits keeps only ASCII digits.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// lowercase words kept in titles, "Vila da Saúde"
var connectives = map[string]bool{
	"da": true, "das": true, "de": true, "do": true, "dos": true, "e": true,
}

// Title formats a user supplied name for storage: "JARDIM  DAS flores" -> "Jardim das Flores".
func Title(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if i > 0 && connectives[w] {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Similarity returns 1 - levenshtein(a, b)/max(len(a), len(b)) over the
// normalized forms, lengths counted in runes.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	longest := max(utf8.RuneCountInString(na), utf8.RuneCountInString(nb))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(na, nb))/float64(longest)
}
