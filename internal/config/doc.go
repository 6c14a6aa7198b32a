// Package config loads, normalizes, and validates asrbench configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// ASRBENCH_LANGUAGE. The Config type centralizes every knob the CLI and
// scoring engine need: alignment cell limits, transcript language, filler
// words, and log settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized values and clear validation errors.
package config
