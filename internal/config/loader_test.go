package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/snek/internal/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snek.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultIsValid(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}

	classic, ok := cfg.Variant("classic")
	if !ok {
		t.Fatal("classic variant missing from embedded default")
	}
	if classic.Columns != 25 || classic.Rows != 25 || classic.Speed != 150*time.Millisecond {
		t.Errorf("classic = %+v, expected 25x25 at 150ms", classic)
	}
	if cfg.FrameRate != 30 {
		t.Errorf("FrameRate = %d, expected 30", cfg.FrameRate)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
frame_rate: 20
difficulty: hard
variants:
  - id: tiny
    title: Tiny
    columns: 6
    rows: 5
    speed: 200ms
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.FrameRate != 20 || cfg.Difficulty != DifficultyHard {
		t.Errorf("cfg = %+v, expected frame_rate 20 and hard", cfg)
	}
	if cfg.DefaultVariant != "tiny" {
		t.Errorf("DefaultVariant = %q, expected the first variant", cfg.DefaultVariant)
	}

	v, _ := cfg.Variant("tiny")
	s := v.Settings(cfg.Difficulty)
	if s.Speed != 130*time.Millisecond {
		t.Errorf("hard speed = %s, expected 130ms", s.Speed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "variants: [::"},
		{"board too small", "variants:\n  - id: x\n    columns: 2\n    rows: 2\n    speed: 100ms\n"},
		{"missing speed", "variants:\n  - id: x\n    columns: 10\n    rows: 10\n"},
		{"unknown difficulty", "difficulty: brutal\nvariants:\n  - id: x\n    columns: 10\n    rows: 10\n    speed: 1s\n"},
		{"no variants", "frame_rate: 30\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.body)); err == nil {
				t.Error("Load() should fail")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}

func TestValidateWrapsSettingsError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variants[0].Rows = 1

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, game.ErrInvalidSettings) {
		t.Errorf("Validate() = %v, expected both config and settings errors", err)
	}
}

func TestValidateDuplicateVariant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variants = append(cfg.Variants, cfg.Variants[0])

	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
	}
}

func TestScaleSpeed(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected time.Duration
	}{
		{DifficultyEasy, 135 * time.Millisecond},
		{DifficultyNormal, 100 * time.Millisecond},
		{DifficultyHard, 65 * time.Millisecond},
		{DifficultyFixed, 100 * time.Millisecond},
		{"", 100 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			if got := ScaleSpeed(100*time.Millisecond, tc.preset); got != tc.expected {
				t.Errorf("ScaleSpeed() = %s, expected %s", got, tc.expected)
			}
		})
	}
}
