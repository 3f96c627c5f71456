// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error kinds.
package config

import "context"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ScoringMode selects the relevance regime: "improved" or "legacy".
	ScoringMode string `koanf:"scoring_mode"`

	// TemplateCap bounds recommended prompt templates per ranking.
	TemplateCap int `koanf:"template_cap"`

	// TeamCap bounds recommended team compositions per ranking.
	TeamCap int `koanf:"team_cap"`

	// CatalogPath optionally points at a YAML catalog overlay merged after
	// the built-in catalogs.
	CatalogPath string `koanf:"catalog_path"`

	// MaxCustomItems bounds user-created items per catalog kind.
	MaxCustomItems int `koanf:"max_custom_items"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9090",
		ScoringMode:    "improved",
		TemplateCap:    5,
		TeamCap:        3,
		CatalogPath:    "",
		MaxCustomItems: 200,
	}
}
