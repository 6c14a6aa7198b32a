package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"asrbench/internal/fileutil"
)

//go:embed sample_config.toml
var sampleConfig string

// Alignment bounds the detailed alignment strategy. Both values are cell
// counts (reference length times hypothesis length).
type Alignment struct {
	// DetailedCells is the largest matrix scored with itemized edit
	// operations. Larger comparisons fall back to linear counting.
	DetailedCells int `toml:"detailed_cells"`
	// HardCapCells is the absolute matrix ceiling; beyond it itemization is
	// never attempted.
	HardCapCells int `toml:"hard_cap_cells"`
}

// Scoring contains transcript comparison settings.
type Scoring struct {
	// Language is the transcript language code (ISO 639 or English name),
	// used for locale-aware lowercasing. Empty means language-neutral rules.
	Language string `toml:"language"`
	// IgnoredInsertionWords lists filler words that never count as
	// hypothesis insertions (matched case-insensitively).
	IgnoredInsertionWords []string `toml:"ignored_insertion_words"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for asrbench.
//
// Configuration sections:
//   - Alignment: memory/itemization trade-off for the edit-distance engine
//   - Scoring: transcript language and filler-word handling
//   - Logging: log format and level
type Config struct {
	Alignment Alignment `toml:"alignment"`
	Scoring   Scoring   `toml:"scoring"`
	Logging   Logging   `toml:"logging"`
}

// SampleConfig returns the embedded annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/asrbench/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has defaults applied and every field normalized. It also reports the
// resolved path and whether a file was actually found there; a missing file
// is not an error, defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("asrbench.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := fileutil.WriteFileAtomic(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath resolves a leading ~ to the user's home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
