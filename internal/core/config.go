package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to seed level generation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for level layouts (0 = time based, chosen by the platform)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current run score
	GameOver bool // Whether the run has ended in defeat
	Victory  bool // Whether the run has ended by clearing the final level
	Paused   bool // Whether the simulation is paused
}


// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Run outcomes reported in RunSummary.
const (
	OutcomeGameOver  = "game_over"
	OutcomeVictory   = "victory"
	OutcomeAbandoned = "abandoned"
)

// RunSummary describes a finished run for high-score bookkeeping, metrics and logs.
type RunSummary struct {
	RunID         string
	Score         int
	Level         string // Name of the level the run ended on
	LevelsCleared int
	Outcome       string
}
