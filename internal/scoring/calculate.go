package scoring

import (
	"strings"

	"asrbench/internal/align"
	"asrbench/internal/language"
	"asrbench/internal/textnorm"
)

// Options carries the optional parameters of a Calculate call. Nil range
// bounds mean "unrestricted"; a partial range defaults the missing bound.
// The zero value scores the full texts with neutral casing and default
// alignment limits.
type Options struct {
	RefStart *int
	RefEnd   *int
	HypStart *int
	HypEnd   *int

	// IgnoredInsertionWords are filler words removed from the hypothesis
	// before alignment (case-insensitive).
	IgnoredInsertionWords []string

	// Language selects locale-aware lowercasing, as an ISO 639 code or
	// English language name. Unknown or empty values fall back to neutral
	// rules.
	Language string

	Limits align.Limits
}

// Calculate scores hypothesis against reference and returns the assembled
// metrics. The word-level alignment picks its strategy from the input sizes
// and Options.Limits; the character-level alignment always runs linear since
// codepoint sequences are long and itemization is only reported for words.
func Calculate(reference, hypothesis string, opts Options) Result {
	norm := textnorm.New(language.Tag(opts.Language))

	refWords := textnorm.Words(norm.Normalize(reference))
	hypWords := textnorm.Words(norm.Normalize(hypothesis))

	refWords, refSpan := sliceSpan(refWords, opts.RefStart, opts.RefEnd)
	hypWords, hypSpan := sliceSpan(hypWords, opts.HypStart, opts.HypEnd)
	hypWords = filterIgnored(hypWords, opts.IgnoredInsertionWords, norm)

	words := align.Align(refWords, hypWords, opts.Limits)

	refChars := textnorm.Chars(strings.Join(refWords, " "))
	hypChars := textnorm.Chars(strings.Join(hypWords, " "))
	chars := align.Linear(refChars, hypChars)

	return Result{
		WER:             rate(words.Distance, len(refWords)),
		CER:             rate(chars.Distance, len(refChars)),
		Substitutions:   words.Substitutions,
		Insertions:      words.Insertions,
		Deletions:       words.Deletions,
		ReferenceWords:  len(refWords),
		HypothesisWords: len(hypWords),
		Errors:          words.Ops,
		RefSpan:         refSpan,
		HypSpan:         hypSpan,
	}
}
