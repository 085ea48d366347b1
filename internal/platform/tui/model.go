package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vanara-leap/internal/core"
	"github.com/vovakirdan/vanara-leap/internal/narration"
	"github.com/vovakirdan/vanara-leap/internal/registry"
	"github.com/vovakirdan/vanara-leap/internal/storage"
)

// Options are the collaborators a Model may use. All fields are optional.
type Options struct {
	Store     *storage.Store      // High score persistence; nil disables it
	Narrator  *narration.Fallback // Advice text; nil uses the stock lines
	Logger    *log.Logger         // nil discards
	Metrics   *Metrics            // nil records nothing
	HoldTicks int                 // Key latch window; <1 uses core.DefaultHoldTicks
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
// The bottom terminal row is reserved for the key help line.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	latch     *core.KeyLatch
	keys      *KeyMapper
	help      help.Model
	spinner   spinner.Model
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Narrator == nil {
		opts.Narrator = narration.WithFallback(nil, 0, opts.Logger)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		config:  cfg,
		opts:    opts,
		latch:   core.NewKeyLatch(opts.HoldTicks),
		keys:    NewKeyMapper(DefaultKeyMap()),
		help:    h,
		spinner: sp,
	}
}

func playRows(h int) int {
	return core.Max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = playRows(cfg.ScreenH)
	m.game.Reset(cfg)
	m.loadHighScore()

	return tea.Batch(tickCmd(m.config.TickRate), m.spinner.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case narrationMsg:
		if n, ok := m.game.(registry.Narrated); ok {
			n.DeliverNarration(msg.req, msg.text)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey latches keyboard input until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.Apply(msg, m.latch) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize resizes the screen buffer. Game state is kept; games draw
// against the buffer they are given.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step and collects follow-up work.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.latch.Frame())
	m.gameState = result.State

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if n, ok := m.game.(registry.Narrated); ok {
		for _, req := range n.TakeNarrationRequests() {
			cmds = append(cmds, narrateCmd(m.opts.Narrator, m.opts.Metrics, req))
		}
	}
	m.recordFinishedRun()

	return m, tea.Batch(cmds...)
}

// loadHighScore seeds the game's high score from storage.
func (m Model) loadHighScore() {
	hs, ok := m.game.(registry.HighScorer)
	if !ok || m.opts.Store == nil {
		return
	}
	score, err := m.opts.Store.HighScore(hs.HighScoreKey())
	if err != nil {
		m.opts.Logger.Warn("could not read high score", "error", err)
		return
	}
	hs.SetHighScore(score)
}

// recordFinishedRun persists and reports a run that ended this tick.
// Only game-over results are written to the high score table.
func (m Model) recordFinishedRun() {
	hs, ok := m.game.(registry.HighScorer)
	if !ok {
		return
	}
	run, ok := hs.TakeFinishedRun()
	if !ok {
		return
	}

	newHigh := false
	if run.Outcome == core.OutcomeGameOver && m.opts.Store != nil {
		changed, err := m.opts.Store.SaveHighScore(hs.HighScoreKey(), run.Score)
		if err != nil {
			m.opts.Logger.Warn("could not save high score", "run", run.RunID, "error", err)
		}
		newHigh = changed
	}

	m.opts.Logger.Info("run finished",
		"run", run.RunID,
		"outcome", run.Outcome,
		"score", run.Score,
		"level", run.Level,
		"cleared", run.LevelsCleared,
		"new_high", newHigh,
	)
	m.opts.Metrics.runFinished(run, newHigh)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if l, ok := m.game.(registry.Loading); ok {
		if x, y, ok := l.LoadingAt(); ok {
			m.screen.DrawTextColored(x, y, m.spinner.View(), core.ColorOrange)
		}
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
