// Package config loads and validates doctex YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-doctex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxURLLength  = 2048 // Browser limit
	MaxPathLength = 4096 // Filesystem limit
)

// Config holds all configuration for documentation post-processing.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Script ScriptConfig `yaml:"script"`
	Output OutputConfig `yaml:"output"`
}

// InputConfig defines where generated documentation is scanned.
type InputConfig struct {
	DocsDir string `yaml:"docsDir"` // Root of generated HTML (default: "docs")
}

// ScriptConfig defines the injected script reference.
type ScriptConfig struct {
	URL string `yaml:"url"` // Empty = built-in MathJax CDN URL
}

// OutputConfig defines write-back behavior.
type OutputConfig struct {
	// WriteUnchanged forces rewriting files whose content did not change.
	// Default (false) skips those writes, preserving mtimes.
	WriteUnchanged bool `yaml:"writeUnchanged"`
}

// DefaultConfig returns the configuration used when no file is given:
// scan the conventional docs output directory, inject the built-in
// MathJax reference, skip unchanged writes.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{DocsDir: "docs"},
	}
}

// Load reads, parses, and validates a config file. Unknown fields are
// rejected so typos surface instead of silently doing nothing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path supplied by the operator
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field lengths. Called automatically by Load, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.docsDir", c.Input.DocsDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("script.url", c.Script.URL, MaxURLLength); err != nil {
		return err
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}
