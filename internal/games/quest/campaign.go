package quest

import (
	"github.com/vovakirdan/vanara-leap/internal/config"
	"github.com/vovakirdan/vanara-leap/internal/core"
	"github.com/vovakirdan/vanara-leap/internal/games/quest/sim"
	"github.com/vovakirdan/vanara-leap/internal/narration"
)

// Package-level settings applied by the CLI before the platform creates the game.
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
	startLevelID     string
	configWatcher    *config.Watcher
)

// SetConfigPath sets a custom configuration file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty applied on every load.
func SetDifficultyPreset(p config.DifficultyPreset) {
	difficultyPreset = p
}

// SetStartLevel makes new campaigns begin at the level with the given id.
// An empty id starts at the first level.
func SetStartLevel(id string) {
	startLevelID = id
}

// SetConfigWatcher enables hot reload: when w reports a change, the file is
// re-read and applied at the next level start.
func SetConfigWatcher(w *config.Watcher) {
	configWatcher = w
}

// LoadConfig loads the quest configuration with the current path and preset.
func LoadConfig() (config.QuestConfig, error) {
	cfg, err := config.LoadQuest(configPath)
	if err != nil {
		return config.QuestConfig{}, err
	}
	config.ApplyQuestPreset(&cfg, difficultyPreset)
	if startLevelID != "" {
		if _, _, ok := cfg.LevelByID(startLevelID); !ok {
			return config.QuestConfig{}, &config.Error{
				Scope:  "levels",
				Reason: "unknown start level " + startLevelID,
				Err:    config.ErrInvalidLevel,
			}
		}
	}
	return cfg, nil
}

func startIndex(cfg config.QuestConfig) int {
	if startLevelID == "" {
		return 0
	}
	if _, i, ok := cfg.LevelByID(startLevelID); ok {
		return i
	}
	return 0
}

func (g *Game) currentLevel() config.Level {
	if g.levelIdx < 0 || g.levelIdx >= len(g.cfg.Levels) {
		return config.Level{}
	}
	return g.cfg.Levels[g.levelIdx]
}

func (g *Game) isFinalLevel() bool {
	return g.levelIdx == len(g.cfg.Levels)-1
}

// startCampaign begins a fresh run at the start level's story card.
func (g *Game) startCampaign() {
	g.sim.Stop()
	g.levelIdx = startIndex(g.cfg)
	g.score = 0
	g.cleared = 0
	g.newHigh = false
	g.runID = uuidString()
	g.finished = nil
	g.last = sim.Snapshot{}
	g.enterStory()
}

// enterStory shows the current level's card and asks for its opening line.
func (g *Game) enterStory() {
	g.phase = PhaseStory
	g.story = ""
	g.toast = ""
	g.toastTicks = 0
	g.storyReqID = g.request(narration.SituationStart, false)
}

// beginLevel applies any pending reload and starts the current level.
func (g *Game) beginLevel() {
	g.reloadIfChanged()

	if err := g.sim.StartLevel(g.currentLevel()); err != nil {
		g.err = err
		g.phase = PhaseError
		return
	}
	g.storyReqID = 0
	g.lowHealthAsked = false
	g.bossAsked = false
	g.tauntAsked = false
	g.last = g.sim.Snapshot()
	g.phase = PhasePlaying
}

// reloadIfChanged swaps in a re-read configuration when the watcher saw the
// file change. A broken file keeps the running configuration.
func (g *Game) reloadIfChanged() {
	if configWatcher == nil || !configWatcher.Changed() {
		return
	}
	cfg, err := LoadConfig()
	if err != nil {
		g.showToast("config reload failed: " + err.Error())
		return
	}
	if g.levelIdx >= len(cfg.Levels) {
		g.showToast("config reload skipped: level list shrank")
		return
	}
	g.cfg = cfg
	g.sim.SetTuning(sim.NewTuning(cfg))
	g.showToast("configuration reloaded")
}

func (g *Game) showToast(text string) {
	g.toast = text
	g.toastTicks = ToastSeconds * g.runtime.TickRate
}

// request queues a narration request for the current level and returns its id.
func (g *Game) request(s narration.Situation, taunt bool) uint64 {
	level := g.currentLevel()
	g.nextReqID++
	req := narration.Request{
		ID:          g.nextReqID,
		LevelName:   level.Name,
		Description: level.Description,
		Situation:   s,
		Taunt:       taunt,
	}
	g.requests = append(g.requests, req)
	g.inFlight[req.ID] = level.ID
	return req.ID
}

// checkTriggers issues the once-per-level advice requests.
func (g *Game) checkTriggers() {
	p := g.last.Player
	if !g.lowHealthAsked && p.Health < g.cfg.Narration.LowHealthThreshold {
		g.lowHealthAsked = true
		g.request(narration.SituationLowHealth, false)
	}

	if !g.isFinalLevel() || g.bossAsked {
		return
	}
	for _, e := range g.last.Entities {
		if e.Kind != sim.KindGoal {
			continue
		}
		if e.Pos.X-p.Pos.X <= g.cfg.Canvas.Width {
			g.bossAsked = true
			g.request(narration.SituationBossFight, false)
		}
		break
	}
}

func (g *Game) onScore(delta int) {
	g.score += delta
}

func (g *Game) onEnemyContact(string) {
	if g.isFinalLevel() && !g.tauntAsked {
		g.tauntAsked = true
		g.request("", true)
	}
}

func (g *Game) onWin() {
	g.cleared++
	if g.isFinalLevel() {
		g.phase = PhaseVictory
		g.finish(core.OutcomeVictory)
		return
	}
	g.levelIdx++
	g.enterStory()
}

func (g *Game) onGameOver() {
	g.phase = PhaseGameOver
	if g.score > g.highScore {
		g.highScore = g.score
		g.newHigh = true
	}
	g.finish(core.OutcomeGameOver)
}

// finish records the run for the platform. Only game-over results are
// candidates for the persistent high score.
func (g *Game) finish(outcome string) {
	g.finished = &core.RunSummary{
		RunID:         g.runID,
		Score:         g.score,
		Level:         g.currentLevel().Name,
		LevelsCleared: g.cleared,
		Outcome:       outcome,
	}
}
