package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/vanara-leap/internal/config"
	"github.com/vovakirdan/vanara-leap/internal/core"
)

// Fixed entity ids.
const (
	GroundID = "ground"
	GoalID   = "goal"
)

// Perlin parameters for the "perlin" height mode.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = int32(3)
	noiseStride  = 0.37 // Sample spacing per platform; integer samples of 1D Perlin noise are always zero
)

// heightSource yields the platform height factor in [0, 1) for the i-th platform.
type heightSource func(i int) float64

func uniformHeights(rng *rand.Rand) heightSource {
	return func(int) float64 { return rng.Float64() }
}

func perlinHeights(rng *rand.Rand) heightSource {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, rng.Int63())
	top := math.Nextafter(1, 0)
	return func(i int) float64 {
		n := p.Noise1D(float64(i)*noiseStride + 0.5)
		return core.ClampF((n+1)/2, 0, top)
	}
}

// Generate lays out the entities of a level: the ground, then a platform with an
// enemy above it (and sometimes a power-up above the enemy) every Layout.Step
// units, then the goal near the right edge.
// A level with non-positive, non-finite or oversized dimensions, or a step
// below config.MinLayoutStep, fails with a *config.Error before anything is
// laid out.
func Generate(level config.Level, t Tuning, rng *rand.Rand) ([]Entity, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}
	if err := config.ValidateStep(t.Layout.Step); err != nil {
		return nil, err
	}

	l := t.Layout
	heights := uniformHeights(rng)
	if l.HeightNoise == config.NoisePerlin {
		heights = perlinHeights(rng)
	}

	ents := []Entity{{
		ID:     GroundID,
		Kind:   KindPlatform,
		Pos:    core.V(0, t.Canvas.Height-l.GroundHeight),
		Width:  level.Width,
		Height: l.GroundHeight,
	}}

	i := 0
	for x := l.StartX; x < level.Width-l.EndMargin; x += l.Step {
		platY := l.PlatformBaseY - heights(i)*l.PlatformJitter
		i++

		ents = append(ents, Entity{
			ID:     fmt.Sprintf("plat-%g", x),
			Kind:   KindPlatform,
			Pos:    core.V(x, platY),
			Width:  l.PlatformWidth,
			Height: l.PlatformHeight,
		})

		sign := 1.0
		if rng.Intn(2) == 0 {
			sign = -1
		}
		ents = append(ents, Entity{
			ID:     fmt.Sprintf("enemy-%g", x),
			Kind:   KindEnemy,
			Pos:    core.V(x+l.EnemyOffsetX, platY-l.EnemyHeight),
			Vel:    core.V(sign*l.EnemySpeed, 0),
			Width:  l.EnemyWidth,
			Height: l.EnemyHeight,
		})

		if rng.Float64() < l.PowerUpChance {
			ents = append(ents, Entity{
				ID:     fmt.Sprintf("pu-%g", x),
				Kind:   KindPowerUp,
				Pos:    core.V(x+l.PowerUpOffsetX, platY-l.PowerUpOffsetY),
				Width:  l.PowerUpSize,
				Height: l.PowerUpSize,
			})
		}
	}

	ents = append(ents, Entity{
		ID:     GoalID,
		Kind:   KindGoal,
		Pos:    core.V(level.Width-l.GoalInset, t.Canvas.Height-l.GoalTopFromBase),
		Width:  l.GoalWidth,
		Height: l.GoalHeight,
	})

	return ents, nil
}
