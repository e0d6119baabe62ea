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
//  2. file (YAML) if PITCHKIT_CONFIG is set
//  3. env (prefix PITCHKIT_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("PITCHKIT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PITCHKIT_ADDR, PITCHKIT_PIXELS_PER_UNIT, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("PITCHKIT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "pitchkit_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.PixelsPerUnit <= 0:
		return fmt.Errorf("%w: pixels_per_unit must be positive", ErrInvalidConfig)
	case c.MaxPixels <= 0:
		return fmt.Errorf("%w: max_pixels must be positive", ErrInvalidConfig)
	case c.SurfaceLevels < 2:
		return fmt.Errorf("%w: surface_levels must be at least 2", ErrInvalidConfig)
	case c.PitchLength <= 0 || c.PitchWidth <= 0:
		return fmt.Errorf("%w: pitch dimensions must be positive", ErrInvalidConfig)
	case c.Padding < 0:
		return fmt.Errorf("%w: padding must not be negative", ErrInvalidConfig)
	}
	switch c.Scale {
	case "", "opta", "statsbomb", "metric":
	default:
		return fmt.Errorf("%w: unknown scale %q", ErrInvalidConfig, c.Scale)
	}
	return nil
}
