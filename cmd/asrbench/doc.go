// Package main hosts the asrbench CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into transcript
// scoring runs: a single reference/hypothesis comparison, a ranking of
// several hypotheses against one reference, and configuration scaffolding.
// It centralizes configuration resolution and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
