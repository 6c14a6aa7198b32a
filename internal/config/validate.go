package config

import (
	"errors"
	"fmt"

	"asrbench/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAlignment(); err != nil {
		return err
	}
	if err := c.validateScoring(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAlignment() error {
	if c.Alignment.DetailedCells <= 0 {
		return errors.New("alignment.detailed_cells must be > 0")
	}
	if c.Alignment.HardCapCells <= 0 {
		return errors.New("alignment.hard_cap_cells must be > 0")
	}
	if c.Alignment.DetailedCells > c.Alignment.HardCapCells {
		return fmt.Errorf("alignment.detailed_cells (%d) must not exceed alignment.hard_cap_cells (%d)",
			c.Alignment.DetailedCells, c.Alignment.HardCapCells)
	}
	return nil
}

func (c *Config) validateScoring() error {
	if c.Scoring.Language != "" && !language.Known(c.Scoring.Language) {
		return fmt.Errorf("scoring.language: unrecognized language %q", c.Scoring.Language)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
