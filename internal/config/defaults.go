package config

import "asrbench/internal/align"

const (
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
	defaultLanguage  = "yi"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Alignment: Alignment{
			DetailedCells: align.DefaultDetailedCells,
			HardCapCells:  align.DefaultHardCapCells,
		},
		Scoring: Scoring{
			Language: defaultLanguage,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// Limits converts the alignment section into engine limits.
func (c *Config) Limits() align.Limits {
	return align.Limits{
		DetailedCells: c.Alignment.DetailedCells,
		HardCapCells:  c.Alignment.HardCapCells,
	}
}
