package textnorm

import (
	"strings"
	"unicode"
)

// Words splits s on whitespace runs, dropping empty tokens.
func Words(s string) []string {
	return strings.Fields(s)
}

// Chars strips all whitespace from s and returns one token per Unicode
// codepoint. Tokens are codepoints, never UTF-8 byte units, so multi-byte
// scripts compare correctly.
func Chars(s string) []string {
	if s == "" {
		return nil
	}
	tokens := make([]string, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		tokens = append(tokens, string(r))
	}
	return tokens
}
