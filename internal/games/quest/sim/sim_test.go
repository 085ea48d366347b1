package sim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/vanara-leap/internal/config"
	"github.com/vovakirdan/vanara-leap/internal/core"
)

var testLevel = config.Level{ID: "t1", Name: "Test Grove", Theme: config.ThemeKishkindha, Width: 5000, Height: 600}

func ground() Entity {
	return Entity{ID: "ground", Kind: KindPlatform, Pos: core.V(0, 560), Width: 5000, Height: 40}
}

func enemyAt(id string, x, y float64) Entity {
	return Entity{ID: id, Kind: KindEnemy, Pos: core.V(x, y), Width: 50, Height: 60}
}

// runningSim starts testLevel and swaps in a hand-built layout.
func runningSim(t *testing.T, hooks Hooks, ents ...Entity) *Sim {
	t.Helper()
	s := New(DefaultTuning(), hooks, rand.New(rand.NewSource(1)))
	require.NoError(t, s.StartLevel(testLevel))
	s.World().Entities = ents
	return s
}

type hookCounter struct {
	wins, gameOvers int
	score           int
	scoreCalls      int
	contacts        []string
}

func (h *hookCounter) hooks() Hooks {
	return Hooks{
		OnWin:      func() { h.wins++ },
		OnGameOver: func() { h.gameOvers++ },
		OnScoreChange: func(d int) {
			h.score += d
			h.scoreCalls++
		},
		OnEnemyContact: func(id string) { h.contacts = append(h.contacts, id) },
	}
}

func TestStartLevelResetsPlayer(t *testing.T) {
	s := New(DefaultTuning(), Hooks{}, rand.New(rand.NewSource(7)))
	require.NoError(t, s.StartLevel(testLevel))

	snap := s.Snapshot()
	assert.Equal(t, Running, snap.State)
	assert.True(t, snap.Active)
	assert.Equal(t, core.V(100, 300), snap.Player.Pos)
	assert.Equal(t, 45.0, snap.Player.Width)
	assert.Equal(t, 65.0, snap.Player.Height)
	assert.Equal(t, 100.0, snap.Player.Health)
	assert.Equal(t, 100.0, snap.Player.FlyEnergy)
	assert.Equal(t, 1, snap.Player.Direction)
	assert.True(t, snap.Player.CanDoubleJump)
	assert.Zero(t, snap.CameraX)
	assert.NotEmpty(t, snap.Entities)
}

func TestStartLevelRejectsInvalidLevel(t *testing.T) {
	s := New(DefaultTuning(), Hooks{}, nil)

	err := s.StartLevel(config.Level{ID: "bad", Name: "Bad", Width: 0, Height: 600})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidLevel))

	var cfgErr *config.Error
	assert.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, Stopped, s.State())
	assert.False(t, s.Snapshot().Active)
}

func TestPausedTickIsNoOp(t *testing.T) {
	s := runningSim(t, Hooks{})
	before := s.Snapshot()

	s.Pause()
	for i := 0; i < 10; i++ {
		s.Tick(Input{Right: true, Jump: true})
	}
	after := s.Snapshot()
	assert.Equal(t, Paused, after.State)
	assert.Equal(t, before.Player, after.Player)
	assert.Equal(t, before.CameraX, after.CameraX)
	assert.Equal(t, 0, s.Ticks())

	s.Resume()
	s.Tick(Input{Right: true})
	assert.Equal(t, 1, s.Ticks())
	assert.Equal(t, 105.0, s.Snapshot().Player.Pos.X)
}

func TestTogglePause(t *testing.T) {
	s := runningSim(t, Hooks{})
	s.TogglePause()
	assert.Equal(t, Paused, s.State())
	s.TogglePause()
	assert.Equal(t, Running, s.State())

	s.Stop()
	s.TogglePause()
	assert.Equal(t, Stopped, s.State(), "toggling a stopped driver does nothing")
}

func TestFallOutFiresGameOverOnce(t *testing.T) {
	var h hookCounter
	s := runningSim(t, h.hooks())
	s.World().Player.Pos.Y = 700.5 // canvas height + margin is 700

	r := s.Tick(Input{})
	assert.True(t, r.GameOver)
	assert.Equal(t, 1, h.gameOvers)
	assert.Equal(t, Stopped, s.State())
	assert.Nil(t, s.World(), "world is discarded on game-over")

	for i := 0; i < 5; i++ {
		s.Tick(Input{})
	}
	assert.Equal(t, 1, h.gameOvers)
}

func TestFallOutIgnoresHealth(t *testing.T) {
	w := &World{Level: testLevel, Player: NewPlayer(DefaultTuning())}
	w.Player.Pos.Y = 701
	assert.Equal(t, 100.0, w.Player.Health)
	assert.True(t, EndOfTick(w, DefaultTuning()))

	w.Player.Pos.Y = 700
	assert.False(t, EndOfTick(w, DefaultTuning()), "exactly at the margin is still in the world")
}

func TestHealthDepletionGameOverOnce(t *testing.T) {
	var h hookCounter
	s := runningSim(t, h.hooks(), enemyAt("enemy-1", 90, 290))
	s.World().Player.Health = 0.25

	r := s.Tick(Input{})
	assert.True(t, r.GameOver)
	assert.Equal(t, 1, r.Hits)
	assert.Equal(t, 1, h.gameOvers)
	assert.Zero(t, h.wins)
}

func TestEndOfTickClampsHealth(t *testing.T) {
	w := &World{Level: testLevel, Player: NewPlayer(DefaultTuning())}
	w.Player.Health = -0.25
	assert.True(t, EndOfTick(w, DefaultTuning()))
	assert.Equal(t, 0.0, w.Player.Health)
}

func TestGoalFiresWin(t *testing.T) {
	var h hookCounter
	goal := Entity{ID: "goal", Kind: KindGoal, Pos: core.V(50, 150), Width: 150, Height: 410}
	s := runningSim(t, h.hooks(), goal)

	r := s.Tick(Input{})
	assert.True(t, r.Won)
	assert.Equal(t, 1, h.wins)
	assert.Equal(t, Stopped, s.State())

	s.Tick(Input{})
	assert.Equal(t, 1, h.wins)
}

func TestGameOverBeatsWinInSameTick(t *testing.T) {
	var h hookCounter
	goal := Entity{ID: "goal", Kind: KindGoal, Pos: core.V(50, 150), Width: 150, Height: 410}
	s := runningSim(t, h.hooks(), goal, enemyAt("enemy-1", 90, 290))
	s.World().Player.Health = 0.5

	r := s.Tick(Input{})
	assert.True(t, r.GameOver)
	assert.False(t, r.Won)
	assert.Equal(t, 1, h.gameOvers)
	assert.Zero(t, h.wins)
}

func TestPowerUpScenario(t *testing.T) {
	var h hookCounter
	pu := Entity{ID: "pu-1", Kind: KindPowerUp, Pos: core.V(110, 510), Width: 35, Height: 35}
	s := runningSim(t, h.hooks(), ground(), pu)
	s.World().Player.Pos.Y = 495 // Resting on the ground

	s.Tick(Input{}) // Tick T
	p := s.Snapshot().Player
	assert.True(t, p.Invincible)
	assert.Equal(t, 1000, h.score)
	assert.Empty(t, byKind(s.World().Entities, KindPowerUp))

	for i := 1; i < 399; i++ {
		s.Tick(Input{})
	}
	assert.True(t, s.Snapshot().Player.Invincible, "still invincible at T+398")

	s.Tick(Input{}) // T+399
	s.Tick(Input{}) // T+400
	p = s.Snapshot().Player
	assert.False(t, p.Invincible)
	assert.Zero(t, p.PowerUpTimer)
	assert.Equal(t, 1000, h.score, "no re-pickup")
}

func TestInvinciblePlayerTakesNoDamage(t *testing.T) {
	var h hookCounter
	s := runningSim(t, h.hooks(), enemyAt("enemy-1", 90, 290))
	s.World().Player.Invincible = true
	s.World().Player.PowerUpTimer = 50

	s.Tick(Input{})
	p := s.Snapshot().Player
	assert.Equal(t, 100.0, p.Health)
	assert.Equal(t, 100.0, p.Pos.X)
	assert.Empty(t, h.contacts)
}

func TestCameraTracksPlayer(t *testing.T) {
	s := runningSim(t, Hooks{}, ground())
	s.World().Player.Pos = core.V(3000, 495)

	prev := s.Snapshot().CameraX
	for i := 0; i < 200; i++ {
		s.Tick(Input{})
		cur := s.Snapshot().CameraX
		assert.GreaterOrEqual(t, cur, prev, "camera moves toward a target ahead of it")
		assert.LessOrEqual(t, cur, 2400.0)
		prev = cur
	}
	assert.InDelta(t, 2400, prev, 0.01)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := runningSim(t, Hooks{}, ground(), enemyAt("enemy-1", 900, 100))
	snap := s.Snapshot()
	snap.Entities[0].Pos.X = 999
	snap.Player.Health = 1

	again := s.Snapshot()
	assert.Equal(t, 0.0, again.Entities[0].Pos.X)
	assert.Equal(t, 100.0, again.Player.Health)
}

func TestSetTuningAppliesAtNextLevel(t *testing.T) {
	s := runningSim(t, Hooks{})
	tuning := DefaultTuning()
	tuning.Player.MaxHealth = 50
	s.SetTuning(tuning)

	assert.Equal(t, 100.0, s.Snapshot().Player.Health, "current level keeps its player")
	require.NoError(t, s.StartLevel(testLevel))
	assert.Equal(t, 50.0, s.Snapshot().Player.Health)
}

func TestInputFromFrame(t *testing.T) {
	var f core.InputFrame
	f.Set(core.ActionLeft)
	f.Set(core.ActionFly)
	f.Set(core.ActionPause)

	assert.Equal(t, Input{Left: true, Fly: true}, InputFromFrame(f))
}
