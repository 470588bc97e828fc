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
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if BENCHRANK_CONFIG is set
//  3. env (prefix BENCHRANK_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("BENCHRANK_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: BENCHRANK_ADDR, BENCHRANK_BENCHMARK_DIR, ...
	// Map env keys like BENCHRANK_MAX_TOP_LIMIT -> max_top_limit.
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("BENCHRANK_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "benchrank_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.MaxTopLimit < 1 {
		return nil, fmt.Errorf("%w: max_top_limit must be positive", ErrInvalidConfig)
	}

	// PRICE_API_KEY is the conventional env var for the offer API; accept
	// it as a fallback when the prefixed form is unset.
	if cfg.PriceAPIKey == "" {
		cfg.PriceAPIKey = os.Getenv("PRICE_API_KEY")
	}

	return &cfg, nil
}
