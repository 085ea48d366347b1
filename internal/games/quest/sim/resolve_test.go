package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/vanara-leap/internal/core"
)

// worldAt builds a world with the player parked at (x, y) and not moving.
func worldAt(x, y float64, ents ...Entity) *World {
	w := &World{Level: testLevel, Player: NewPlayer(DefaultTuning()), Entities: ents}
	w.Player.Pos = core.V(x, y)
	return w
}

func TestAttackKillsExactlyOneEnemy(t *testing.T) {
	var h hookCounter
	w := worldAt(1000, 200,
		ground(),
		enemyAt("enemy-1", 990, 190),
		enemyAt("enemy-2", 2000, 190),
	)
	w.Player.IsAttacking = true
	w.Player.AttackTimer = 5

	out := Resolve(w, DefaultTuning(), h.hooks())
	assert.Equal(t, 1, out.Kills)
	assert.Equal(t, 150, out.ScoreDelta)
	assert.Equal(t, 150, h.score)
	require.Len(t, w.Entities, 2)
	assert.Equal(t, "ground", w.Entities[0].ID)
	assert.Equal(t, "enemy-2", w.Entities[1].ID)
	assert.Equal(t, 100.0, w.Player.Health)
}

func TestAttackKillsTwoOverlappingEnemies(t *testing.T) {
	var h hookCounter
	w := worldAt(1000, 200,
		enemyAt("enemy-1", 990, 190),
		enemyAt("enemy-2", 1010, 210),
	)
	w.Player.IsAttacking = true
	w.Player.AttackTimer = 5

	out := Resolve(w, DefaultTuning(), h.hooks())
	assert.Equal(t, 2, out.Kills)
	assert.Equal(t, 300, h.score)
	assert.Equal(t, 2, h.scoreCalls)
	assert.Empty(t, w.Entities)
}

func TestEnemyContactDamageAndKnockback(t *testing.T) {
	var h hookCounter
	w := worldAt(1000, 200, enemyAt("enemy-1", 990, 190))

	for i := 1; i <= 3; i++ {
		out := Resolve(w, DefaultTuning(), h.hooks())
		require.Equal(t, 1, out.Hits, "tick %d", i)
		assert.Equal(t, 100-0.5*float64(i), w.Player.Health)
		assert.Equal(t, 1000-15*float64(i), w.Player.Pos.X)
	}
	assert.Equal(t, []string{"enemy-1", "enemy-1", "enemy-1"}, h.contacts)
	assert.Zero(t, h.score)
}

func TestKnockbackOpposesFacing(t *testing.T) {
	w := worldAt(1000, 200, enemyAt("enemy-1", 990, 190))
	w.Player.Direction = -1

	Resolve(w, DefaultTuning(), Hooks{})
	assert.Equal(t, 1015.0, w.Player.Pos.X)
}

func TestDamageAndPickupInSameTick(t *testing.T) {
	var h hookCounter
	w := worldAt(1000, 200,
		enemyAt("enemy-1", 990, 190),
		Entity{ID: "pu-1", Kind: KindPowerUp, Pos: core.V(990, 230), Width: 35, Height: 35},
	)

	out := Resolve(w, DefaultTuning(), h.hooks())
	assert.Equal(t, 1, out.Hits)
	assert.Equal(t, 1, out.PowerUps)
	assert.Equal(t, 99.5, w.Player.Health)
	assert.True(t, w.Player.Invincible)
	assert.Equal(t, 400, w.Player.PowerUpTimer)
	assert.Equal(t, 1000, h.score)
	require.Len(t, w.Entities, 1)
	assert.Equal(t, "enemy-1", w.Entities[0].ID)
}

func TestPowerUpPickup(t *testing.T) {
	var h hookCounter
	w := worldAt(1000, 200, Entity{ID: "pu-1", Kind: KindPowerUp, Pos: core.V(1010, 220), Width: 35, Height: 35})

	out := Resolve(w, DefaultTuning(), h.hooks())
	assert.Equal(t, 1, out.PowerUps)
	assert.True(t, w.Player.Invincible)
	assert.Equal(t, 400, w.Player.PowerUpTimer)
	assert.Equal(t, 1000, h.score)
	assert.Empty(t, w.Entities)
}

func TestGoalReportedNotFired(t *testing.T) {
	var h hookCounter
	w := worldAt(1000, 200, Entity{ID: "goal", Kind: KindGoal, Pos: core.V(1000, 150), Width: 150, Height: 410})

	out := Resolve(w, DefaultTuning(), h.hooks())
	assert.True(t, out.ReachedGoal)
	assert.Zero(t, h.wins, "the driver fires the win hook")
}

func TestProjectilesAreIgnored(t *testing.T) {
	w := worldAt(1000, 200, Entity{ID: "shot", Kind: KindProjectile, Pos: core.V(1000, 200), Width: 10, Height: 10})
	out := Resolve(w, DefaultTuning(), Hooks{})
	assert.Equal(t, Outcome{}, out)
	assert.Len(t, w.Entities, 1)
}

func TestEnemiesPatrol(t *testing.T) {
	e := enemyAt("enemy-1", 1000, 100)
	e.Vel = core.V(2, 0)
	w := worldAt(100, 100, e)

	Resolve(w, DefaultTuning(), Hooks{})
	assert.Equal(t, 1002.0, w.Entities[0].Pos.X)
	assert.Equal(t, 2.0, w.Entities[0].Vel.X)
}

func TestPatrolBouncesAtLevelBounds(t *testing.T) {
	tests := []struct {
		name   string
		x, vx  float64
		wantX  float64
		wantVX float64
	}{
		{"leaves left edge", 1, -2, -1, 2},
		{"at left edge", 2, -2, 0, -2},
		{"leaves right edge", 4999, 2, 5001, -2},
		{"inside", 2500, 2, 2502, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entity{Kind: KindEnemy, Pos: core.V(tt.x, 0), Vel: core.V(tt.vx, 0)}
			Patrol(&e, 5000)
			assert.Equal(t, tt.wantX, e.Pos.X)
			assert.Equal(t, tt.wantVX, e.Vel.X)
		})
	}
}

func TestKilledEnemyDoesNotPatrol(t *testing.T) {
	e := enemyAt("enemy-1", 990, 190)
	e.Vel = core.V(2, 0)
	other := enemyAt("enemy-2", 3000, 190)
	other.Vel = core.V(-2, 0)
	w := worldAt(1000, 200, e, other)
	w.Player.IsAttacking = true
	w.Player.AttackTimer = 3

	Resolve(w, DefaultTuning(), Hooks{})
	require.Len(t, w.Entities, 1)
	assert.Equal(t, 2998.0, w.Entities[0].Pos.X)
}

func TestPowerUpTimerExpiry(t *testing.T) {
	w := worldAt(100, 100)
	w.Player.Invincible = true
	w.Player.PowerUpTimer = 2

	EndOfTick(w, DefaultTuning())
	assert.True(t, w.Player.Invincible)
	EndOfTick(w, DefaultTuning())
	assert.False(t, w.Player.Invincible)
	assert.Zero(t, w.Player.PowerUpTimer)
}
