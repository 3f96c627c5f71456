package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if JUMPSTART_CONFIG is set
//  3. env (prefix JUMPSTART_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("JUMPSTART_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: JUMPSTART_ADDR, JUMPSTART_SCORING_MODE, ...
	// Keys keep their underscores to match the koanf struct tags.
	envProvider := env.Provider("JUMPSTART_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "jumpstart_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.ScoringMode != "improved" && cfg.ScoringMode != "legacy":
		return nil, fmt.Errorf("%w: scoring_mode must be improved or legacy", ErrInvalidConfig)
	case cfg.TemplateCap < 0 || cfg.TeamCap < 0:
		return nil, fmt.Errorf("%w: recommendation caps must not be negative", ErrInvalidConfig)
	}
	return &cfg, nil
}
