package config

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for configuration problems. Use errors.Is against these.
var (
	ErrInvalidLevel  = errors.New("invalid level")
	ErrInvalidConfig = errors.New("invalid config")
)

// Limits on level geometry. Together they bound the generator to at most
// MaxLevelWidth/MinLayoutStep platform slots.
const (
	MaxLevelWidth = 1_000_000
	MinLayoutStep = 1
)

// Layout noise modes.
const (
	NoiseUniform = "uniform"
	NoisePerlin  = "perlin"
)

// Level themes.
const (
	ThemeKishkindha = "kishkindha"
	ThemeVindhya    = "vindhya"
	ThemeLanka      = "lanka"
)

// Error describes a configuration value that cannot be played.
type Error struct {
	Scope  string // e.g. "level l1" or "layout"
	Reason string
	Err    error // ErrInvalidLevel or ErrInvalidConfig
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Scope, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func levelError(id, format string, args ...any) *Error {
	return &Error{Scope: "level " + id, Reason: fmt.Sprintf(format, args...), Err: ErrInvalidLevel}
}

func configError(scope, format string, args ...any) *Error {
	return &Error{Scope: scope, Reason: fmt.Sprintf(format, args...), Err: ErrInvalidConfig}
}

// Validate checks that a level descriptor can be generated and played.
func (l Level) Validate() error {
	id := l.ID
	if id == "" {
		id = "<unnamed>"
		return levelError(id, "id is required")
	}
	if l.Name == "" {
		return levelError(id, "name is required")
	}
	if !positive(l.Width) || l.Width > MaxLevelWidth {
		return levelError(id, "width must be within (0, %d] (got %g)", MaxLevelWidth, l.Width)
	}
	if !positive(l.Height) {
		return levelError(id, "height must be positive and finite (got %g)", l.Height)
	}
	return nil
}

// Validate checks the whole configuration, failing on the first problem found.
func (c QuestConfig) Validate() error {
	if !positive(c.Canvas.Width) || !positive(c.Canvas.Height) {
		return configError("canvas", "dimensions must be positive and finite (got %gx%g)", c.Canvas.Width, c.Canvas.Height)
	}
	if err := ValidateStep(c.Layout.Step); err != nil {
		return err
	}
	if c.Layout.PowerUpChance < 0 || c.Layout.PowerUpChance > 1 {
		return configError("layout", "powerup_chance must be within [0, 1] (got %g)", c.Layout.PowerUpChance)
	}
	switch c.Layout.HeightNoise {
	case "", NoiseUniform, NoisePerlin:
	default:
		return configError("layout", "unknown height_noise %q", c.Layout.HeightNoise)
	}
	if c.Physics.MaxFlyEnergy <= 0 {
		return configError("physics", "max_fly_energy must be positive (got %g)", c.Physics.MaxFlyEnergy)
	}
	if c.Player.MaxHealth <= 0 {
		return configError("player", "max_health must be positive (got %g)", c.Player.MaxHealth)
	}
	if c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1 {
		return configError("camera", "smoothing must be within (0, 1] (got %g)", c.Camera.Smoothing)
	}
	if len(c.Levels) == 0 {
		return configError("levels", "at least one level is required")
	}

	seen := make(map[string]bool, len(c.Levels))
	for _, l := range c.Levels {
		if err := l.Validate(); err != nil {
			return err
		}
		if seen[l.ID] {
			return levelError(l.ID, "duplicate id")
		}
		seen[l.ID] = true
	}
	return nil
}

// ValidateStep checks the horizontal spacing between platform slots.
func ValidateStep(step float64) error {
	if math.IsNaN(step) || math.IsInf(step, 0) || step < MinLayoutStep {
		return configError("layout", "step must be finite and at least %d (got %g)", MinLayoutStep, step)
	}
	return nil
}

// positive reports whether v is a finite number above zero.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
