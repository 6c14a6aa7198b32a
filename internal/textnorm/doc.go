// Package textnorm normalizes and tokenizes transcript text for error-rate
// comparison.
//
// Normalization lowercases text for a given language, strips Hebrew vowel
// points and cantillation marks along with all other Unicode combining marks,
// removes every character that is not a letter, digit, or whitespace, and
// collapses whitespace runs. All operations work on Unicode codepoints so
// multi-byte scripts survive intact.
//
// Tokenization produces either whitespace-delimited word tokens or individual
// codepoint tokens for character-level scoring.
package textnorm
