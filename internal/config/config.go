// Package config loads the bibliography tool configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "bibliography.yml"

// Config is the tool configuration. Every key is optional; a missing
// file yields the defaults.
type Config struct {
	Bibliography string         `yaml:"bibliography"` // input .bib path
	HTMLOut      string         `yaml:"html_out"`     // rendered publication list
	ReportOut    string         `yaml:"report_out"`   // metadata watch report
	Style        string         `yaml:"style"`        // csl or legacy
	Crossref     CrossrefConfig `yaml:"crossref"`
}

// CrossrefConfig configures the metadata watcher's Crossref client.
type CrossrefConfig struct {
	Mailto         string `yaml:"mailto"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the configured per-request timeout.
func (c CrossrefConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Bibliography: "publications.bib",
		HTMLOut:      "publications.html",
		ReportOut:    "metadata_report.md",
		Style:        "csl",
		Crossref:     CrossrefConfig{TimeoutSeconds: 25},
	}
}

// Load reads configuration from path. A missing file is not an error;
// the defaults apply. Empty keys in a present file fall back to their
// defaults as well.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	def := Default()
	if cfg.Bibliography == "" {
		cfg.Bibliography = def.Bibliography
	}
	if cfg.HTMLOut == "" {
		cfg.HTMLOut = def.HTMLOut
	}
	if cfg.ReportOut == "" {
		cfg.ReportOut = def.ReportOut
	}
	if cfg.Style == "" {
		cfg.Style = def.Style
	}
	if cfg.Crossref.TimeoutSeconds <= 0 {
		cfg.Crossref.TimeoutSeconds = def.Crossref.TimeoutSeconds
	}

	switch cfg.Style {
	case "csl", "legacy":
	default:
		return nil, fmt.Errorf("invalid style %q: must be csl or legacy", cfg.Style)
	}

	return cfg, nil
}
