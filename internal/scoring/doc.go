// Package scoring computes word and character error rates between a reference
// transcript and an ASR hypothesis.
//
// Calculate is the single entry point: it normalizes and tokenizes both
// texts, optionally restricts each side to a clamped word range, drops
// configured filler words from the hypothesis, aligns at word level for WER
// and at codepoint level for CER, and assembles everything into an immutable
// Result. The whole path is pure computation with no shared state, so any
// number of concurrent calls need no coordination.
package scoring
