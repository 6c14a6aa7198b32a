package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeScoring()
	c.normalizeLogging()
}

func (c *Config) normalizeScoring() {
	c.Scoring.Language = strings.ToLower(strings.TrimSpace(c.Scoring.Language))
	if c.Scoring.Language == "" {
		if value, ok := os.LookupEnv("ASRBENCH_LANGUAGE"); ok {
			c.Scoring.Language = strings.ToLower(strings.TrimSpace(value))
		}
	}

	words := make([]string, 0, len(c.Scoring.IgnoredInsertionWords))
	seen := make(map[string]struct{}, len(c.Scoring.IgnoredInsertionWords))
	for _, w := range c.Scoring.IgnoredInsertionWords {
		trimmed := strings.TrimSpace(w)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		words = append(words, trimmed)
	}
	c.Scoring.IgnoredInsertionWords = words
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
