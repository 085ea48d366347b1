package sim

import (
	"math"

	"github.com/vovakirdan/vanara-leap/internal/core"
)

// Input is the held-key state for one tick, read once at tick start.
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
	Fly    bool
}

// InputFromFrame maps a latched input frame to simulation input.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Left:   f.Has(core.ActionLeft),
		Right:  f.Has(core.ActionRight),
		Jump:   f.Has(core.ActionJump),
		Attack: f.Has(core.ActionAttack),
		Fly:    f.Has(core.ActionFly),
	}
}

// Integrate advances the player by one tick: horizontal control, attack timer,
// jump, flight, gravity, then an explicit Euler position step.
func Integrate(p *Player, in Input, t Tuning) {
	ph := t.Physics

	switch {
	case in.Right:
		p.Vel.X = ph.MoveSpeed
		p.Direction = 1
	case in.Left:
		p.Vel.X = -ph.MoveSpeed
		p.Direction = -1
	default:
		p.Vel.X *= ph.Friction
	}

	if in.Attack && !p.IsAttacking {
		p.IsAttacking = true
		p.AttackTimer = t.Player.AttackTicks
	}
	if p.IsAttacking {
		p.AttackTimer--
		if p.AttackTimer <= 0 {
			p.AttackTimer = 0
			p.IsAttacking = false
		}
	}

	if in.Jump && !p.IsJumping {
		p.Vel.Y = ph.JumpForce
		p.IsJumping = true
	}

	if in.Fly && p.FlyEnergy > 0 {
		p.IsFlying = true
		p.Vel.Y = ph.FlyAscent
		p.FlyEnergy = math.Max(0, p.FlyEnergy-ph.FlyDrain)
	} else {
		p.IsFlying = false
		p.FlyEnergy = math.Min(ph.MaxFlyEnergy, p.FlyEnergy+ph.FlyRegen)
	}

	if !p.IsFlying {
		p.Vel.Y += ph.Gravity
	}

	p.Pos = p.Pos.Add(p.Vel)
}
