package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snek.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration used when even the
// embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		FrameRate:      30,
		Difficulty:     DifficultyNormal,
		DefaultVariant: "classic",
		Variants: []VariantConfig{
			{ID: "classic", Title: "Classic 25x25", Columns: 25, Rows: 25, Speed: 150 * time.Millisecond},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
