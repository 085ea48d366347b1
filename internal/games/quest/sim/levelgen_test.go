package sim

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/vanara-leap/internal/config"
)

func byKind(ents []Entity, k Kind) []Entity {
	var out []Entity
	for _, e := range ents {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

func TestGenerateLayout(t *testing.T) {
	for _, level := range config.DefaultQuestConfig().Levels {
		t.Run(level.Name, func(t *testing.T) {
			ents, err := Generate(level, DefaultTuning(), rand.New(rand.NewSource(42)))
			require.NoError(t, err)

			require.Equal(t, "ground", ents[0].ID)
			assert.Equal(t, 560.0, ents[0].Pos.Y)
			assert.Equal(t, level.Width, ents[0].Width)
			assert.Equal(t, 40.0, ents[0].Height)

			goal := ents[len(ents)-1]
			require.Equal(t, KindGoal, goal.Kind)
			assert.Equal(t, level.Width-300, goal.Pos.X)
			assert.Equal(t, 150.0, goal.Pos.Y)
			assert.Less(t, goal.Pos.X, level.Width)

			plats := byKind(ents, KindPlatform)[1:]
			enemies := byKind(ents, KindEnemy)
			require.NotEmpty(t, plats)
			assert.Len(t, enemies, len(plats))
			assert.LessOrEqual(t, len(byKind(ents, KindPowerUp)), len(plats))

			for i, p := range plats {
				assert.Equal(t, 500+700*float64(i), p.Pos.X, "fixed step spacing")
				assert.Less(t, p.Pos.X, level.Width-600)
				assert.Greater(t, p.Pos.Y, 150.0)
				assert.LessOrEqual(t, p.Pos.Y, 350.0)

				e := enemies[i]
				assert.Equal(t, p.Pos.X+100, e.Pos.X)
				assert.Equal(t, p.Pos.Y-60, e.Pos.Y)
				assert.Equal(t, 2.0, abs(e.Vel.X))
			}
		})
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestGeneratePlatformCount(t *testing.T) {
	ents, err := Generate(testLevel, DefaultTuning(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	// 500, 1200, 1900, 2600, 3300, 4000 are all below 5000-600.
	assert.Len(t, byKind(ents, KindPlatform), 7)
}

func TestGenerateUniqueIDs(t *testing.T) {
	ents, err := Generate(testLevel, DefaultTuning(), rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, e := range ents {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
	assert.True(t, seen["plat-500"])
	assert.True(t, seen["enemy-500"])
}

func TestGeneratePowerUpChance(t *testing.T) {
	tuning := DefaultTuning()

	tuning.Layout.PowerUpChance = 0
	ents, err := Generate(testLevel, tuning, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	assert.Empty(t, byKind(ents, KindPowerUp))

	tuning.Layout.PowerUpChance = 1
	ents, err = Generate(testLevel, tuning, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	pus := byKind(ents, KindPowerUp)
	require.Len(t, pus, 6)
	for _, pu := range pus {
		assert.True(t, strings.HasPrefix(pu.ID, "pu-"))
		assert.Equal(t, 35.0, pu.Width)
	}
}

func TestGenerateNarrowLevel(t *testing.T) {
	level := config.Level{ID: "n", Name: "Narrow", Width: 1000, Height: 600}
	ents, err := Generate(level, DefaultTuning(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, ents, 2)
	assert.Equal(t, "ground", ents[0].ID)
	assert.Equal(t, 700.0, ents[1].Pos.X)
}

func TestGenerateRejectsBadDimensions(t *testing.T) {
	tests := []config.Level{
		{ID: "w0", Name: "Zero width", Width: 0, Height: 600},
		{ID: "wneg", Name: "Negative width", Width: -10, Height: 600},
		{ID: "h0", Name: "Zero height", Width: 5000, Height: 0},
	}

	for _, level := range tests {
		t.Run(level.ID, func(t *testing.T) {
			ents, err := Generate(level, DefaultTuning(), rand.New(rand.NewSource(1)))
			assert.Nil(t, ents)
			var cfgErr *config.Error
			require.True(t, errors.As(err, &cfgErr))
			assert.True(t, errors.Is(err, config.ErrInvalidLevel))
		})
	}
}

func TestGenerateRejectsZeroStep(t *testing.T) {
	tuning := DefaultTuning()
	tuning.Layout.Step = 0
	_, err := Generate(testLevel, tuning, rand.New(rand.NewSource(1)))
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestGenerateRejectsNonFiniteWidth(t *testing.T) {
	tests := []config.Level{
		{ID: "inf", Name: "Endless", Width: math.Inf(1), Height: 600},
		{ID: "nan", Name: "Nowhere", Width: math.NaN(), Height: 600},
		{ID: "huge", Name: "Vast", Width: 1e12, Height: 600},
		{ID: "hinf", Name: "Bottomless", Width: 5000, Height: math.Inf(1)},
	}

	for _, level := range tests {
		t.Run(level.ID, func(t *testing.T) {
			ents, err := Generate(level, DefaultTuning(), rand.New(rand.NewSource(1)))
			assert.Nil(t, ents)
			assert.True(t, errors.Is(err, config.ErrInvalidLevel))
		})
	}
}

func TestGenerateRejectsTinyStep(t *testing.T) {
	for _, step := range []float64{1e-9, 0.5, math.NaN(), math.Inf(1)} {
		tuning := DefaultTuning()
		tuning.Layout.Step = step
		ents, err := Generate(testLevel, tuning, rand.New(rand.NewSource(1)))
		assert.Nil(t, ents, "step %g", step)
		assert.True(t, errors.Is(err, config.ErrInvalidConfig), "step %g", step)
	}
}

func TestGeneratePerlinHeights(t *testing.T) {
	tuning := DefaultTuning()
	tuning.Layout.HeightNoise = config.NoisePerlin

	level := config.Level{ID: "l3", Name: "Lanka", Width: 8000, Height: 600}
	a, err := Generate(level, tuning, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	b, err := Generate(level, tuning, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed, same layout")

	for _, p := range byKind(a, KindPlatform)[1:] {
		assert.Greater(t, p.Pos.Y, 150.0)
		assert.LessOrEqual(t, p.Pos.Y, 350.0)
	}
}
