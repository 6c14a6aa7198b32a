// Package logging builds log/slog loggers with console and JSON output.
//
// The console handler renders a single human-friendly line per record and
// prefixes messages with the component attribute when present. The JSON
// handler emits one object per record with stable ts/level/msg keys for
// machine consumption. Output destinations accept stdout, stderr, or file
// paths and may be combined.
package logging
