package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// hebrewPoints covers niqqud (vowel points) and cantillation marks. These are
// listed explicitly rather than relying on the Mn category alone so the set
// stays stable across Unicode table updates.
var hebrewPoints = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0591, Hi: 0x05AF, Stride: 1}, // cantillation
		{Lo: 0x05B0, Hi: 0x05BD, Stride: 1}, // niqqud
		{Lo: 0x05BF, Hi: 0x05BF, Stride: 1},
		{Lo: 0x05C1, Hi: 0x05C2, Stride: 1},
		{Lo: 0x05C4, Hi: 0x05C5, Stride: 1},
		{Lo: 0x05C7, Hi: 0x05C7, Stride: 1},
	},
}

// Normalizer canonicalizes transcript text for comparison. The zero value
// lowercases with language-neutral rules; use New to get locale-aware casing
// (e.g. Turkish dotless i).
type Normalizer struct {
	tag language.Tag
}

// New returns a Normalizer that lowercases according to the given language.
func New(tag language.Tag) Normalizer {
	return Normalizer{tag: tag}
}

// Normalize canonicalizes s: locale-aware lowercase, then diacritic and
// combining-mark removal, then removal of all non letter/digit/whitespace
// characters, then whitespace collapsing and trimming.
//
// Normalize is safe for concurrent use; the stateful x/text transformers are
// constructed per call.
func (n Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = cases.Lower(n.tag).String(s)
	if out, _, err := transform.String(markStripper(), s); err == nil {
		s = out
	}
	s = strings.Map(keepComparable, s)
	return strings.Join(strings.Fields(s), " ")
}

// Normalize canonicalizes s with language-neutral casing.
func Normalize(s string) string {
	return Normalizer{}.Normalize(s)
}

// markStripper removes Hebrew points and every remaining combining mark.
// Text is decomposed first so precomposed Latin diacritics (é) reduce the
// same way as combining sequences, then recomposed.
func markStripper() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.Predicate(isMark)),
		norm.NFC,
	)
}

func isMark(r rune) bool {
	return unicode.Is(hebrewPoints, r) || unicode.In(r, unicode.Mn, unicode.Mc)
}

func keepComparable(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
		return r
	}
	return -1
}
