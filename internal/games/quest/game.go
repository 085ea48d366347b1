// Package quest implements Vanara Leap, a side-scrolling platformer campaign.
// The per-tick simulation lives in the sim subpackage; this package owns the
// campaign around it: menu, story cards, level progression, scoring,
// narration requests and the high score.
package quest

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/vanara-leap/internal/config"
	"github.com/vovakirdan/vanara-leap/internal/core"
	"github.com/vovakirdan/vanara-leap/internal/games/quest/sim"
	"github.com/vovakirdan/vanara-leap/internal/narration"
	"github.com/vovakirdan/vanara-leap/internal/registry"
)

// HighScoreKey is the storage key for the campaign high score.
const HighScoreKey = "hanuman_highscore"

// ToastSeconds is how long an in-play advice line stays on screen.
const ToastSeconds = 5

// Phase is the campaign screen currently shown.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseStory
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseVictory
	PhaseError // Configuration could not be loaded
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseStory:
		return "story"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Game implements registry.Game for the campaign.
type Game struct {
	cfg     config.QuestConfig
	runtime core.RuntimeConfig
	sim     *sim.Sim
	err     error

	phase     Phase
	levelIdx  int
	score     int
	highScore int
	newHigh   bool
	runID     string
	cleared   int
	frame     int

	story      string
	storyReqID uint64
	toast      string
	toastTicks int

	lowHealthAsked bool
	bossAsked      bool
	tauntAsked     bool

	nextReqID uint64
	requests  []narration.Request
	inFlight  map[uint64]string // request id -> level id it was made for
	finished  *core.RunSummary
	last      sim.Snapshot // last active world, drawn while the sim is stopped

	loadingX, loadingY int
}

// New creates a new campaign.
func New() *Game {
	return &Game{inFlight: make(map[uint64]string)}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "quest"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Vanara Leap"
}

// Reset loads configuration and returns to the title menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	questCfg, err := LoadConfig()
	if err != nil {
		g.err = err
		g.phase = PhaseError
		return
	}
	g.err = nil
	g.cfg = questCfg
	g.sim = sim.New(sim.NewTuning(questCfg), sim.Hooks{
		OnWin:          g.onWin,
		OnGameOver:     g.onGameOver,
		OnScoreChange:  g.onScore,
		OnEnemyContact: g.onEnemyContact,
	}, rng)

	g.phase = PhaseMenu
	g.levelIdx = startIndex(questCfg)
	g.score = 0
	g.cleared = 0
	g.story = ""
	g.storyReqID = 0
	g.toast = ""
	g.toastTicks = 0
	g.requests = nil
	g.inFlight = make(map[uint64]string)
	g.finished = nil
	g.last = sim.Snapshot{}
}

// Step advances the campaign by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++
	if g.toastTicks > 0 {
		g.toastTicks--
		if g.toastTicks == 0 {
			g.toast = ""
		}
	}

	switch g.phase {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) {
			g.startCampaign()
		}

	case PhaseStory:
		if in.Has(core.ActionConfirm) {
			g.beginLevel()
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
			g.sim.Pause()
			g.phase = PhasePaused
			break
		}
		g.sim.Tick(sim.InputFromFrame(in))
		if snap := g.sim.Snapshot(); snap.Active {
			g.last = snap
			g.checkTriggers()
		}

	case PhasePaused:
		switch {
		case in.Has(core.ActionPause):
			g.sim.Resume()
			g.phase = PhasePlaying
		case in.Has(core.ActionBack):
			g.sim.Stop()
			g.finish(core.OutcomeAbandoned)
			g.phase = PhaseMenu
		}

	case PhaseGameOver, PhaseVictory:
		switch {
		case in.Has(core.ActionRestart):
			g.startCampaign()
		case in.Has(core.ActionConfirm), in.Has(core.ActionBack):
			g.phase = PhaseMenu
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current campaign state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Victory:  g.phase == PhaseVictory,
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the screen currently shown.
func (g *Game) Phase() Phase {
	return g.phase
}

// Err returns the configuration error, if the campaign could not start.
func (g *Game) Err() error {
	return g.err
}

// Snapshot returns the last drawn world.
func (g *Game) Snapshot() sim.Snapshot {
	return g.last
}

// LevelIndex returns the position of the current level in the campaign.
func (g *Game) LevelIndex() int {
	return g.levelIdx
}

// HighScoreKey implements registry.HighScorer.
func (g *Game) HighScoreKey() string {
	return HighScoreKey
}

// SetHighScore seeds the displayed high score from storage.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// HighScore returns the best score known to this session.
func (g *Game) HighScore() int {
	return g.highScore
}

// TakeFinishedRun implements registry.HighScorer.
func (g *Game) TakeFinishedRun() (core.RunSummary, bool) {
	if g.finished == nil {
		return core.RunSummary{}, false
	}
	run := *g.finished
	g.finished = nil
	return run, true
}

// TakeNarrationRequests implements registry.Narrated.
func (g *Game) TakeNarrationRequests() []narration.Request {
	reqs := g.requests
	g.requests = nil
	return reqs
}

// DeliverNarration implements registry.Narrated. Lines for a story card or
// level that is no longer on screen are dropped.
func (g *Game) DeliverNarration(req narration.Request, text string) {
	levelID, ok := g.inFlight[req.ID]
	if !ok {
		return
	}
	delete(g.inFlight, req.ID)

	if req.ID == g.storyReqID {
		g.storyReqID = 0
		if g.phase == PhaseStory {
			g.story = text
		}
		return
	}

	if g.phase != PhasePlaying && g.phase != PhasePaused {
		return
	}
	if levelID != g.currentLevel().ID {
		return
	}
	g.toast = text
	g.toastTicks = ToastSeconds * g.runtime.TickRate
}

// LoadingAt implements registry.Loading.
func (g *Game) LoadingAt() (x, y int, ok bool) {
	if g.phase != PhaseStory || g.storyReqID == 0 {
		return 0, 0, false
	}
	return g.loadingX, g.loadingY, true
}

func init() {
	registry.Register("quest", func() registry.Game { return New() })
}

// Compile-time checks for the optional platform interfaces.
var (
	_ registry.Narrated   = (*Game)(nil)
	_ registry.Loading    = (*Game)(nil)
	_ registry.HighScorer = (*Game)(nil)
)

// uuidString is swapped in tests for stable run ids.
var uuidString = uuid.NewString
