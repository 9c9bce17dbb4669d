package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value into a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset adjusts ball speed, paddle width and power-up odds.
// Normal leaves the configuration untouched.
func ApplyPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.VelocityX *= 0.8
		cfg.Ball.VelocityY *= 0.8
		cfg.Paddle.Width *= 1.25
		cfg.PowerUps.CommonChance = max(1, cfg.PowerUps.CommonChance*2/3)
		cfg.PowerUps.RareChance = cfg.PowerUps.RareChance * 2
	case DifficultyHard:
		cfg.Ball.VelocityX *= 1.2
		cfg.Ball.VelocityY *= 1.2
		cfg.Paddle.Width *= 0.8
		cfg.PowerUps.CommonChance = cfg.PowerUps.CommonChance * 4 / 3
		cfg.PowerUps.RareChance = max(1, cfg.PowerUps.RareChance*2/3)
	}
}
