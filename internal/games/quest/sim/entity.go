// Package sim is the per-tick platformer simulation: level layout, physics
// integration, collision resolution, enemy patrol, camera tracking and the
// running/paused loop driver. It has no knowledge of terminals or timers;
// the host calls Tick once per rendered frame.
package sim

import (
	"github.com/vovakirdan/vanara-leap/internal/config"
	"github.com/vovakirdan/vanara-leap/internal/core"
)

// Kind is the closed set of entity variants.
type Kind int

const (
	KindPlatform Kind = iota
	KindEnemy
	KindPowerUp
	KindGoal
	KindPlayer
	KindProjectile // Reserved; the resolver ignores it
)

func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindEnemy:
		return "enemy"
	case KindPowerUp:
		return "powerup"
	case KindGoal:
		return "goal"
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Entity is an axis-aligned rectangle anchored at its top-left corner.
type Entity struct {
	ID     string
	Kind   Kind
	Pos    core.Vec
	Vel    core.Vec
	Width  float64
	Height float64
}

// Bounds returns the entity's rectangle in world units.
func (e Entity) Bounds() core.Rect {
	return core.NewRect(e.Pos.X, e.Pos.Y, e.Width, e.Height)
}

// Bottom returns the y coordinate of the entity's lower edge.
func (e Entity) Bottom() float64 {
	return e.Pos.Y + e.Height
}

// PlayerID is the id of the singleton player entity.
const PlayerID = "p1"

// Player is the controllable hero.
type Player struct {
	Entity

	Health        float64
	MaxHealth     float64
	IsJumping     bool
	CanDoubleJump bool // Reserved, never read by the integrator
	IsFlying      bool
	FlyEnergy     float64
	Direction     int // -1 facing left, +1 facing right
	IsAttacking   bool
	AttackTimer   int
	Invincible    bool
	PowerUpTimer  int
}

// NewPlayer returns a player at its spawn point.
func NewPlayer(t Tuning) Player {
	return Player{
		Entity: Entity{
			ID:     PlayerID,
			Kind:   KindPlayer,
			Pos:    core.V(t.Player.SpawnX, t.Player.SpawnY),
			Width:  t.Player.Width,
			Height: t.Player.Height,
		},
		Health:        t.Player.MaxHealth,
		MaxHealth:     t.Player.MaxHealth,
		CanDoubleJump: true,
		FlyEnergy:     t.Physics.MaxFlyEnergy,
		Direction:     1,
	}
}

// World is the mutable state of one active level.
// Entities holds every non-player entity in generation order.
type World struct {
	Level    config.Level
	Player   Player
	Entities []Entity
}

// Goal returns the level's goal entity.
func (w *World) Goal() (Entity, bool) {
	for _, e := range w.Entities {
		if e.Kind == KindGoal {
			return e, true
		}
	}
	return Entity{}, false
}

// Tuning is the subset of configuration the simulation reads every tick.
type Tuning struct {
	Canvas  config.CanvasConfig
	Physics config.PhysicsConfig
	Player  config.PlayerConfig
	Combat  config.CombatConfig
	Layout  config.LayoutConfig
	Camera  config.CameraConfig
}

// NewTuning extracts simulation tuning from a loaded configuration.
func NewTuning(cfg config.QuestConfig) Tuning {
	return Tuning{
		Canvas:  cfg.Canvas,
		Physics: cfg.Physics,
		Player:  cfg.Player,
		Combat:  cfg.Combat,
		Layout:  cfg.Layout,
		Camera:  cfg.Camera,
	}
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return NewTuning(config.DefaultQuestConfig())
}
