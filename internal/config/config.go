// Package config provides YAML-based configuration loading for snek:
// frame rate, difficulty preset and the board variants on offer.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/snek/internal/game"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level configuration file.
type Config struct {
	FrameRate      int              `yaml:"frame_rate"`
	Difficulty     DifficultyPreset `yaml:"difficulty"`
	DefaultVariant string           `yaml:"default_variant"`
	Variants       []VariantConfig  `yaml:"variants"`
}

// VariantConfig describes one playable board.
type VariantConfig struct {
	ID      string        `yaml:"id"`
	Title   string        `yaml:"title"`
	Columns int           `yaml:"columns"`
	Rows    int           `yaml:"rows"`
	Speed   time.Duration `yaml:"speed"` // Go duration string, e.g. "150ms"
}

// Settings converts the variant into simulation settings, with the
// difficulty preset applied to the step interval.
func (v VariantConfig) Settings(preset DifficultyPreset) game.Settings {
	return game.Settings{
		Columns: v.Columns,
		Rows:    v.Rows,
		Speed:   ScaleSpeed(v.Speed, preset),
	}
}

// Variant returns the variant with the given ID.
func (c Config) Variant(id string) (VariantConfig, bool) {
	for _, v := range c.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return VariantConfig{}, false
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalidConfig, c.FrameRate)
	}
	if !c.Difficulty.Valid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, c.Difficulty)
	}
	if len(c.Variants) == 0 {
		return fmt.Errorf("%w: no variants defined", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Variants))
	for _, v := range c.Variants {
		if v.ID == "" {
			return fmt.Errorf("%w: variant without id", ErrInvalidConfig)
		}
		if seen[v.ID] {
			return fmt.Errorf("%w: duplicate variant %q", ErrInvalidConfig, v.ID)
		}
		seen[v.ID] = true

		if err := v.Settings(DifficultyFixed).Validate(); err != nil {
			return fmt.Errorf("%w: variant %q: %w", ErrInvalidConfig, v.ID, err)
		}
	}

	if _, ok := c.Variant(c.DefaultVariant); !ok {
		return fmt.Errorf("%w: default_variant %q is not defined", ErrInvalidConfig, c.DefaultVariant)
	}
	return nil
}
