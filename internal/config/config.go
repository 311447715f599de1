// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key; empty means fallback narratives only
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for JS-heavy source pages
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
	CacheSize  int    `json:"cache_size,omitempty"`  // Max cached assessment responses

	// Timeouts, in milliseconds
	EnrichmentTimeoutMs int `json:"enrichment_timeout_ms,omitempty"` // Whole enrichment batch
	SourceTimeoutMs     int `json:"source_timeout_ms,omitempty"`     // Each individual source
	NarrativeTimeoutMs  int `json:"narrative_timeout_ms,omitempty"`  // Narrative generation
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("config error: 'cache_size' must be non-negative")
	}
	if c.EnrichmentTimeoutMs < 0 {
		return fmt.Errorf("config error: 'enrichment_timeout_ms' must be non-negative")
	}
	if c.SourceTimeoutMs < 0 {
		return fmt.Errorf("config error: 'source_timeout_ms' must be non-negative")
	}
	if c.NarrativeTimeoutMs < 0 {
		return fmt.Errorf("config error: 'narrative_timeout_ms' must be non-negative")
	}
	if c.SourceTimeoutMs > 0 && c.EnrichmentTimeoutMs > 0 && c.SourceTimeoutMs > c.EnrichmentTimeoutMs {
		return fmt.Errorf("config error: 'source_timeout_ms' cannot exceed 'enrichment_timeout_ms'")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.CacheSize == 0 {
		result.CacheSize = defaults.CacheSize
	}
	if result.EnrichmentTimeoutMs == 0 {
		result.EnrichmentTimeoutMs = defaults.EnrichmentTimeoutMs
	}
	if result.SourceTimeoutMs == 0 {
		result.SourceTimeoutMs = defaults.SourceTimeoutMs
	}
	if result.NarrativeTimeoutMs == 0 {
		result.NarrativeTimeoutMs = defaults.NarrativeTimeoutMs
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
