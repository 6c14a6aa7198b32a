package scoring

import "asrbench/internal/textnorm"

// filterIgnored removes hypothesis tokens whose normalized form is in the
// ignored set, so operator-configured filler words ("um", "uh") never count
// as insertions. The reference side is never filtered. Matching is
// case-insensitive: each ignored word passes through the same normalizer as
// the hypothesis text.
func filterIgnored(words []string, ignored []string, norm textnorm.Normalizer) []string {
	if len(words) == 0 || len(ignored) == 0 {
		return words
	}

	set := make(map[string]struct{}, len(ignored))
	for _, w := range ignored {
		if folded := norm.Normalize(w); folded != "" {
			set[folded] = struct{}{}
		}
	}
	if len(set) == 0 {
		return words
	}

	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, drop := set[w]; drop {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}
