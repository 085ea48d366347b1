// Package config provides YAML-based configuration loading for the quest:
// physics tuning, level layout parameters, difficulty presets and the level list.
package config

// QuestConfig contains all configuration for the platformer.
type QuestConfig struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Combat    CombatConfig    `yaml:"combat"`
	Layout    LayoutConfig    `yaml:"layout"`
	Camera    CameraConfig    `yaml:"camera"`
	Input     InputConfig     `yaml:"input"`
	Narration NarrationConfig `yaml:"narration"`
	Levels    []Level         `yaml:"levels"`
}

// CanvasConfig is the logical viewport in world units.
type CanvasConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FallMargin float64 `yaml:"fall_margin"` // How far below the canvas the player may fall before the run ends
}

// PhysicsConfig holds the per-tick integration constants.
// All values assume one tick per rendered frame at roughly 60 Hz.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	Friction         float64 `yaml:"friction"`
	JumpForce        float64 `yaml:"jump_force"`
	MoveSpeed        float64 `yaml:"move_speed"`
	FlyAscent        float64 `yaml:"fly_ascent"`
	FlyDrain         float64 `yaml:"fly_drain"`
	FlyRegen         float64 `yaml:"fly_regen"`
	MaxFlyEnergy     float64 `yaml:"max_fly_energy"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
}

// PlayerConfig defines the player's spawn state.
type PlayerConfig struct {
	SpawnX      float64 `yaml:"spawn_x"`
	SpawnY      float64 `yaml:"spawn_y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	MaxHealth   float64 `yaml:"max_health"`
	AttackTicks int     `yaml:"attack_ticks"`
}

// CombatConfig defines contact, pickup and scoring rules.
type CombatConfig struct {
	ContactDamage float64 `yaml:"contact_damage"`
	Knockback     float64 `yaml:"knockback"`
	KillScore     int     `yaml:"kill_score"`
	PowerUpScore  int     `yaml:"powerup_score"`
	PowerUpTicks  int     `yaml:"powerup_ticks"`
}

// LayoutConfig drives the procedural level generator.
type LayoutConfig struct {
	StartX          float64 `yaml:"start_x"`
	Step            float64 `yaml:"step"`
	EndMargin       float64 `yaml:"end_margin"`
	GroundHeight    float64 `yaml:"ground_height"`
	PlatformWidth   float64 `yaml:"platform_width"`
	PlatformHeight  float64 `yaml:"platform_height"`
	PlatformBaseY   float64 `yaml:"platform_base_y"`
	PlatformJitter  float64 `yaml:"platform_jitter"`
	EnemyWidth      float64 `yaml:"enemy_width"`
	EnemyHeight     float64 `yaml:"enemy_height"`
	EnemyOffsetX    float64 `yaml:"enemy_offset_x"`
	EnemySpeed      float64 `yaml:"enemy_speed"`
	PowerUpChance   float64 `yaml:"powerup_chance"`
	PowerUpSize     float64 `yaml:"powerup_size"`
	PowerUpOffsetX  float64 `yaml:"powerup_offset_x"`
	PowerUpOffsetY  float64 `yaml:"powerup_offset_y"`
	GoalWidth       float64 `yaml:"goal_width"`
	GoalHeight      float64 `yaml:"goal_height"`
	GoalInset       float64 `yaml:"goal_inset"`
	GoalTopFromBase float64 `yaml:"goal_top_from_base"`
	HeightNoise     string  `yaml:"height_noise"` // "uniform" (default) or "perlin"
}

// CameraConfig controls viewport smoothing.
type CameraConfig struct {
	Smoothing float64 `yaml:"smoothing"`
}

// InputConfig controls key latching for hosts without key-release events.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// NarrationConfig controls the advisory text service.
type NarrationConfig struct {
	Model              string  `yaml:"model"`
	TimeoutMS          int     `yaml:"timeout_ms"`
	LowHealthThreshold float64 `yaml:"low_health_threshold"`
}

// Level is an immutable level descriptor. Width bounds the scrollable extent.
type Level struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Theme       string  `yaml:"theme"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
}

// LevelByID returns the level with the given ID.
func (c QuestConfig) LevelByID(id string) (Level, int, bool) {
	for i, l := range c.Levels {
		if l.ID == id {
			return l, i, true
		}
	}
	return Level{}, -1, false
}
