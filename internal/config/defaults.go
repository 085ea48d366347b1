package config

import (
	_ "embed"
)

//go:embed defaults/quest.yaml
var defaultQuestYAML []byte

// DefaultQuestConfig returns the default quest configuration.
// It mirrors defaults/quest.yaml and is used when the embedded file cannot be parsed.
func DefaultQuestConfig() QuestConfig {
	return QuestConfig{
		Canvas: CanvasConfig{
			Width:      1200,
			Height:     600,
			FallMargin: 100,
		},
		Physics: PhysicsConfig{
			Gravity:          0.5,
			Friction:         0.8,
			JumpForce:        -12,
			MoveSpeed:        5,
			FlyAscent:        -5,
			FlyDrain:         0.8,
			FlyRegen:         0.3,
			MaxFlyEnergy:     100,
			LandingTolerance: 10,
		},
		Player: PlayerConfig{
			SpawnX:      100,
			SpawnY:      300,
			Width:       45,
			Height:      65,
			MaxHealth:   100,
			AttackTicks: 12,
		},
		Combat: CombatConfig{
			ContactDamage: 0.5,
			Knockback:     15,
			KillScore:     150,
			PowerUpScore:  1000,
			PowerUpTicks:  400,
		},
		Layout: LayoutConfig{
			StartX:          500,
			Step:            700,
			EndMargin:       600,
			GroundHeight:    40,
			PlatformWidth:   250,
			PlatformHeight:  25,
			PlatformBaseY:   350,
			PlatformJitter:  200,
			EnemyWidth:      50,
			EnemyHeight:     60,
			EnemyOffsetX:    100,
			EnemySpeed:      2,
			PowerUpChance:   0.4,
			PowerUpSize:     35,
			PowerUpOffsetX:  125,
			PowerUpOffsetY:  150,
			GoalWidth:       150,
			GoalHeight:      410,
			GoalInset:       300,
			GoalTopFromBase: 450,
			HeightNoise:     NoiseUniform,
		},
		Camera: CameraConfig{
			Smoothing: 0.1,
		},
		Input: InputConfig{
			HoldTicks: 15,
		},
		Narration: NarrationConfig{
			Model:              "gemini-2.5-flash",
			TimeoutMS:          4000,
			LowHealthThreshold: 30,
		},
		Levels: []Level{
			{
				ID:          "l1",
				Name:        "Kishkindha",
				Description: "The lush monkey kingdom. Watch out for forest demons!",
				Theme:       ThemeKishkindha,
				Width:       5000,
				Height:      600,
			},
			{
				ID:          "l2",
				Name:        "Vindhya Mountains",
				Description: "A rocky path across the treacherous cliffs.",
				Theme:       ThemeVindhya,
				Width:       6000,
				Height:      600,
			},
			{
				ID:          "l3",
				Name:        "Lanka",
				Description: "The Golden City. Face the might of Ravana's army.",
				Theme:       ThemeLanka,
				Width:       8000,
				Height:      600,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultQuestYAML
}
