package sim

import (
	"math/rand"

	"github.com/vovakirdan/vanara-leap/internal/config"
)

// State is the driver's run state.
type State int

const (
	Stopped State = iota // No active level, or the level ended
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Report is what a single tick did, for hosts that want more than the hooks.
type Report struct {
	Outcome
	Won      bool
	GameOver bool
}

// Sim drives one level at a time. It exclusively owns the World; presentation
// reads copies through Snapshot.
type Sim struct {
	tuning Tuning
	hooks  Hooks
	rng    *rand.Rand

	state  State
	world  *World
	camera Camera
	ticks  int
}

// New creates a driver with no active level.
func New(t Tuning, hooks Hooks, rng *rand.Rand) *Sim {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Sim{
		tuning: t,
		hooks:  hooks,
		rng:    rng,
	}
}

// SetTuning replaces the tuning used from the next StartLevel on.
func (s *Sim) SetTuning(t Tuning) {
	s.tuning = t
}

// Tuning returns the active tuning.
func (s *Sim) Tuning() Tuning {
	return s.tuning
}

// StartLevel discards any current world, resets the player to spawn and
// generates a fresh layout. The driver is Running on success.
// An invalid level leaves the driver Stopped and returns a *config.Error.
func (s *Sim) StartLevel(level config.Level) error {
	s.world = nil
	s.state = Stopped

	ents, err := Generate(level, s.tuning, s.rng)
	if err != nil {
		return err
	}

	s.world = &World{
		Level:    level,
		Player:   NewPlayer(s.tuning),
		Entities: ents,
	}
	s.camera = Camera{}
	s.ticks = 0
	s.state = Running
	return nil
}

// Pause suspends ticking. A tick already in progress is unaffected.
func (s *Sim) Pause() {
	if s.state == Running {
		s.state = Paused
	}
}

// Resume continues a paused level.
func (s *Sim) Resume() {
	if s.state == Paused {
		s.state = Running
	}
}

// TogglePause flips between Running and Paused.
func (s *Sim) TogglePause() {
	switch s.state {
	case Running:
		s.state = Paused
	case Paused:
		s.state = Running
	}
}

// Stop ends the level and discards the world.
func (s *Sim) Stop() {
	s.state = Stopped
	s.world = nil
}

// State returns the driver state.
func (s *Sim) State() State {
	return s.state
}

// Ticks returns how many ticks the current level has run.
func (s *Sim) Ticks() int {
	return s.ticks
}

// Tick advances the active level by one step. It is a no-op unless Running.
// Game-over and win each fire at most once; if both happen in the same tick
// only game-over is reported. Either one stops the driver and discards the world.
func (s *Sim) Tick(in Input) Report {
	if s.state != Running || s.world == nil {
		return Report{}
	}

	w := s.world
	Integrate(&w.Player, in, s.tuning)
	out := Resolve(w, s.tuning, s.hooks)
	over := EndOfTick(w, s.tuning)
	s.camera.Follow(w.Player.Pos.X, w.Level.Width, s.tuning)
	s.ticks++

	r := Report{Outcome: out}
	switch {
	case over:
		r.GameOver = true
		s.Stop()
		s.hooks.gameOver()
	case out.ReachedGoal:
		r.Won = true
		s.Stop()
		s.hooks.win()
	}
	return r
}

// World exposes the live world for tests and tooling. Callers must not keep
// the pointer across ticks.
func (s *Sim) World() *World {
	return s.world
}

// Snapshot is a read-only copy of the simulation for drawing.
type Snapshot struct {
	State    State
	Level    config.Level
	Player   Player
	Entities []Entity
	CameraX  float64
	Tick     int
	Active   bool // False when no level has been started
}

// Snapshot copies the current state. The returned value shares nothing with the Sim.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		State:   s.state,
		CameraX: s.camera.X,
		Tick:    s.ticks,
	}
	if s.world == nil {
		return snap
	}
	snap.Active = true
	snap.Level = s.world.Level
	snap.Player = s.world.Player
	snap.Entities = make([]Entity, len(s.world.Entities))
	copy(snap.Entities, s.world.Entities)
	return snap
}
