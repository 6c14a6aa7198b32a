// Package align computes unit-cost Levenshtein alignments between token
// sequences.
//
// Two interchangeable strategies implement the same contract. Detailed builds
// the full distance matrix and backtraces it into an ordered list of edit
// operations; it costs O(m*n) memory. Linear keeps only rolling rows for the
// distance and the three error counters, costing O(n) memory but producing no
// itemized operations. Align dispatches between them based on input sizes and
// the configured cell limits so worst-case memory stays bounded on long
// transcripts.
//
// Both strategies agree on aggregate counts: substitutions + insertions +
// deletions always equals the edit distance.
package align
