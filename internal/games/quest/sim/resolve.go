package sim

// Hooks are the simulation's callbacks into the host. Nil hooks are skipped.
type Hooks struct {
	OnWin          func()
	OnGameOver     func()
	OnScoreChange  func(delta int)
	OnEnemyContact func(id string) // Player touched an enemy without killing it
}

func (h Hooks) win() {
	if h.OnWin != nil {
		h.OnWin()
	}
}

func (h Hooks) gameOver() {
	if h.OnGameOver != nil {
		h.OnGameOver()
	}
}

func (h Hooks) score(delta int) {
	if h.OnScoreChange != nil && delta != 0 {
		h.OnScoreChange(delta)
	}
}

func (h Hooks) contact(id string) {
	if h.OnEnemyContact != nil {
		h.OnEnemyContact(id)
	}
}

// Outcome summarizes what one resolver pass did.
type Outcome struct {
	ReachedGoal bool
	Kills       int
	PowerUps    int
	Hits        int // Ticks of enemy contact damage taken
	ScoreDelta  int
	Landed      bool
}

// Resolve runs the player against every entity in generation order, then
// patrols each enemy. Removals are collected during the scan and compacted
// after it, so an entity removed earlier in the scan is neither hit nor moved again.
// Score changes are reported through hooks as they happen; reaching the goal is
// only reported in the Outcome so the driver can order it against game-over.
func Resolve(w *World, t Tuning, hooks Hooks) Outcome {
	var out Outcome
	p := &w.Player
	removed := make([]bool, len(w.Entities))
	nRemoved := 0

	for i := range w.Entities {
		if removed[i] {
			continue
		}
		e := &w.Entities[i]

		if p.Bounds().Overlaps(e.Bounds()) {
			switch e.Kind {
			case KindPlatform:
				if land(p, e, t) {
					out.Landed = true
				}
			case KindEnemy:
				if p.IsAttacking {
					removed[i] = true
					nRemoved++
					out.Kills++
					out.ScoreDelta += t.Combat.KillScore
					hooks.score(t.Combat.KillScore)
				} else if !p.Invincible {
					p.Health -= t.Combat.ContactDamage
					p.Pos.X -= float64(p.Direction) * t.Combat.Knockback
					out.Hits++
					hooks.contact(e.ID)
				}
			case KindPowerUp:
				p.Invincible = true
				p.PowerUpTimer = t.Combat.PowerUpTicks
				removed[i] = true
				nRemoved++
				out.PowerUps++
				out.ScoreDelta += t.Combat.PowerUpScore
				hooks.score(t.Combat.PowerUpScore)
			case KindGoal:
				out.ReachedGoal = true
			}
		}

		if e.Kind == KindEnemy && !removed[i] {
			Patrol(e, w.Level.Width)
		}
	}

	if nRemoved > 0 {
		kept := w.Entities[:0]
		for i, e := range w.Entities {
			if !removed[i] {
				kept = append(kept, e)
			}
		}
		w.Entities = kept
	}

	return out
}

// land snaps a falling player onto the top of a platform when the player's
// bottom was at or above the platform top (plus tolerance) before this tick's
// vertical motion. Sides and undersides never block.
func land(p *Player, plat *Entity, t Tuning) bool {
	if p.Vel.Y <= 0 {
		return false
	}
	prevBottom := p.Bottom() - p.Vel.Y
	if prevBottom > plat.Pos.Y+t.Physics.LandingTolerance {
		return false
	}
	p.Pos.Y = plat.Pos.Y - p.Height
	p.Vel.Y = 0
	p.IsJumping = false
	return true
}

// Patrol moves an enemy by its velocity and reverses it once it leaves [0, levelWidth].
func Patrol(e *Entity, levelWidth float64) {
	e.Pos = e.Pos.Add(e.Vel)
	if e.Pos.X < 0 || e.Pos.X > levelWidth {
		e.Vel.X = -e.Vel.X
	}
}

// EndOfTick applies the post-interaction checks and reports whether the run is over:
// the player fell below the canvas by more than the fall margin, or health ran out.
// It also ages the power-up timer, clearing invincibility when it expires.
func EndOfTick(w *World, t Tuning) (gameOver bool) {
	p := &w.Player

	if p.Pos.Y > t.Canvas.Height+t.Canvas.FallMargin {
		gameOver = true
	}
	if p.Health <= 0 {
		p.Health = 0
		gameOver = true
	}

	if p.PowerUpTimer > 0 {
		p.PowerUpTimer--
		if p.PowerUpTimer <= 0 {
			p.Invincible = false
		}
	}

	return gameOver
}
