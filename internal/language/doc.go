// Package language resolves transcript language codes for scoring.
//
// ISO 639-1/639-2 codes and English language names map to display names and
// to x/text language tags so the normalizer can apply locale-aware casing.
// Unknown codes resolve to the neutral (und) tag rather than failing:
// scoring stays total over operator input.
package language
