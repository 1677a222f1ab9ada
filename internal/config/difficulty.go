package config

import "time"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Valid reports whether p is a known preset. Empty means normal.
func (p DifficultyPreset) Valid() bool {
	switch p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	default:
		return false
	}
}

// SpeedFactorForPreset returns the multiplier applied to a variant's step
// interval. Larger is slower.
func SpeedFactorForPreset(p DifficultyPreset) float64 {
	switch p {
	case DifficultyEasy:
		return 1.35
	case DifficultyHard:
		return 0.65
	default:
		return 1.0
	}
}

// ScaleSpeed applies the preset to a step interval, rounded to the millisecond.
func ScaleSpeed(speed time.Duration, p DifficultyPreset) time.Duration {
	scaled := time.Duration(float64(speed) * SpeedFactorForPreset(p))
	if scaled <= 0 {
		return speed
	}
	return scaled.Round(time.Millisecond)
}
