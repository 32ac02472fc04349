// Package config defines core configuration types for doctidy.
// These are pure data structures; loading and merging live in
// internal/configloader.
package config

import (
	"fmt"

	"github.com/yaklabco/doctidy/pkg/doctype"
)

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognized.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for doctidy.
type Config struct {
	// Extensions lists file extensions (lowercase, with leading dot)
	// considered for processing during directory discovery.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// Jobs is the number of parallel workers (0 = auto).
	Jobs int `yaml:"jobs"`

	// CLI-level options (not persisted to config files).

	// Type forces a document type instead of auto-detection.
	Type doctype.Type `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Write rewrites files in place when formatting.
	Write bool `yaml:"-"`

	// Out is an explicit output path for single-file formatting.
	Out string `yaml:"-"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Extensions: DefaultExtensions(),
		Type:       doctype.TypeAuto,
		Format:     FormatText,
	}
}

// DefaultExtensions returns the extensions processed by default.
func DefaultExtensions() []string {
	return []string{".json", ".md", ".markdown"}
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 0, got %d", c.Jobs)
	}
	if !c.Type.IsValid() {
		return fmt.Errorf("unknown document type %q", c.Type)
	}
	if c.Format != "" && !c.Format.IsValid() {
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if c.Write && c.Out != "" {
		return fmt.Errorf("--write and --out are mutually exclusive")
	}
	return nil
}
