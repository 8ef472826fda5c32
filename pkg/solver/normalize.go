package solver

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// normalizer folds words and patterns into one comparable form:
// NFC composed and lower-cased for the configured language.
// A cases.Caser keeps state, so every query gets its own normalizer.
type normalizer struct {
	caser cases.Caser
}

func newNormalizer(tag language.Tag) *normalizer {
	return &normalizer{caser: cases.Lower(tag)}
}

// String folds s. Lower-casing must not change the number of letters
// (İ lowers to i plus a combining dot under und), so when it does the
// rune-wise mapping is used instead.
func (n *normalizer) String(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	lower := norm.NFC.String(n.caser.String(s))
	if utf8.RuneCountInString(lower) != utf8.RuneCountInString(s) {
		return strings.Map(unicode.ToLower, s)
	}
	return lower
}
