package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard): %w", s, ErrInvalidConfig)
	}
}

// presetScale returns the enemy speed and contact damage multipliers for a preset.
func presetScale(preset DifficultyPreset) (speed, damage float64) {
	switch preset {
	case DifficultyEasy:
		return 0.75, 0.5
	case DifficultyHard:
		return 1.5, 2.0
	default:
		return 1.0, 1.0
	}
}

// ApplyQuestPreset modifies the config based on a difficulty preset.
// Normal leaves the configured values untouched.
func ApplyQuestPreset(cfg *QuestConfig, preset DifficultyPreset) {
	speed, damage := presetScale(preset)
	if speed == 1 && damage == 1 {
		return
	}
	cfg.Layout.EnemySpeed *= speed
	cfg.Combat.ContactDamage *= damage
}
