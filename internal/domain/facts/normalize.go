package facts

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	titleCaser = cases.Title(language.Und)
)

// Normalize produces the canonical display form used throughout the fact
// base: diacritics stripped, whitespace collapsed, each word title-cased.
// Matching on skill and location names is done on this form so accent and
// casing variance in the source data does not break joins.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	s = strings.Join(strings.Fields(s), " ")
	return titleCaser.String(s)
}

// Fold is the case-insensitive join key for a normalized name. Relation
// vocabulary and query expansion compare on this form.
func Fold(s string) string {
	return strings.ToLower(Normalize(s))
}
