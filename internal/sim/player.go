package sim

import (
	"github.com/mzhdanov/dashline/internal/config"
	"github.com/mzhdanov/dashline/internal/core"
)

// PlayerState is the player's action state. Exactly one is active at a time.
type PlayerState int

const (
	StateRunning PlayerState = iota
	StateJumping
	StateCrouching
	StateDead
)

// String returns a human-readable name for the state.
func (s PlayerState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateCrouching:
		return "crouching"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Player owns the runner's kinematic body and action state. Body.Pos is the
// bottom-left corner of the standing bounds; the ground line passes through
// Pos.Y while grounded. Horizontal velocity is not stored here: the player's
// world x is fixed and the scroll speed lives in the obstacle field, so the
// relative motion always equals baseSpeed * speedMultiplier.
type Player struct {
	Body  Body
	State PlayerState
}

// NewPlayer returns a grounded, running player at the configured start
// position.
func NewPlayer(cfg *config.RunnerConfig) Player {
	return Player{
		Body: Body{
			Pos:      core.Vec2{X: cfg.Player.X, Y: cfg.World.GroundY},
			Grounded: true,
		},
		State: StateRunning,
	}
}

// Update consumes one tick of input and physics and returns the next player.
// Transition precedence (high to low): dead freeze, jump, crouch enter,
// crouch release, landing. dt must already be clamped by the caller.
func (p Player) Update(in core.Input, dt float64, cfg *config.RunnerConfig) Player {
	if p.State == StateDead {
		// Terminal: no physics, no transitions until an external reset.
		return p
	}

	switch {
	case in.Jump && p.Body.Grounded && p.State != StateCrouching:
		p.Body.Vel.Y = -cfg.Physics.JumpImpulse
		p.Body.Grounded = false
		p.State = StateJumping
	case in.Crouch && p.Body.Grounded && p.State != StateJumping:
		p.State = StateCrouching
	case !in.Crouch && p.State == StateCrouching:
		p.State = StateRunning
	}

	wasAirborne := !p.Body.Grounded
	p.Body = Integrate(p.Body, dt, cfg.Physics.Gravity, cfg.World.GroundY)

	// Landing resolves into running unless crouch is held.
	if wasAirborne && p.Body.Grounded {
		if in.Crouch {
			p.State = StateCrouching
		} else {
			p.State = StateRunning
		}
	}

	return p
}

// Kill forces the terminal dead state. Used by the round controller on a
// collision hit.
func (p Player) Kill() Player {
	p.State = StateDead
	return p
}

// Bounds returns the player's visual bounds. Crouching reduces the height to
// the configured fraction, anchored at the ground line: the top edge moves
// down, the bottom edge stays fixed.
func (p Player) Bounds(cfg *config.RunnerConfig) core.AABB {
	h := cfg.Player.Height
	if p.State == StateCrouching {
		h *= cfg.Player.CrouchFraction
	}
	return core.AABB{
		X: p.Body.Pos.X,
		Y: p.Body.Pos.Y - h,
		W: cfg.Player.Width,
		H: h,
	}
}

// Hitbox returns the collision box: the visual bounds shrunk on all sides by
// the configured forgiveness scale. The overlap test itself stays strict; all
// fairness lives here.
func (p Player) Hitbox(cfg *config.RunnerConfig) core.AABB {
	return p.Bounds(cfg).Shrink(cfg.Player.HitboxScale)
}
