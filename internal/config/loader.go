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
//  1. defaults (New())
//  2. file (YAML) if PODIUM_CONFIG is set
//  3. env (prefix PODIUM_)
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("PODIUM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrLoadConfig, err)
		}
	}

	// Environment variables: PODIUM_ADDR, PODIUM_LEDGER_PATH, ...
	// Map env keys like PODIUM_LEDGER_PATH -> ledger_path (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("PODIUM_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "podium_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.LedgerPath == "" {
		return fmt.Errorf("%w: ledger_path must not be empty", ErrInvalidConfig)
	}
	switch c.RoundingMode {
	case "half-up", "ceil":
	default:
		return fmt.Errorf("%w: rounding_mode must be half-up or ceil, got %q", ErrInvalidConfig, c.RoundingMode)
	}
	if c.RoundingDigits < 0 {
		return fmt.Errorf("%w: rounding_digits must not be negative", ErrInvalidConfig)
	}
	switch c.NameMatch {
	case "any-case", "canonical":
	default:
		return fmt.Errorf("%w: name_match must be any-case or canonical, got %q", ErrInvalidConfig, c.NameMatch)
	}
	return nil
}
