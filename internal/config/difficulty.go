package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts lives, paddle width, ball speed and brick toughness.
// Normal leaves the configuration untouched.
func ApplyPreset(cfg *Breakout, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Scale.X *= 1.4
		cfg.Ball.LaunchVelocity = cfg.Ball.LaunchVelocity.Scale(0.8)
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Scale.X *= 0.75
		cfg.Ball.LaunchVelocity = cfg.Ball.LaunchVelocity.Scale(1.25)
		cfg.Bricks.Hits++
		cfg.Bricks.RowHits = nil
	}
}
