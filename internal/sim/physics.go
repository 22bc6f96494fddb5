// Package sim implements the deterministic simulation core of the runner:
// player physics and state machine, difficulty scheduling, procedural
// obstacle generation, collision resolution, and the top-level game state
// machine. It consumes a per-tick input snapshot and elapsed time and emits
// an immutable frame snapshot for the presentation layer. It performs no I/O
// and imports nothing outside the standard library and internal/core.
package sim

import "github.com/mzhdanov/dashline/internal/core"

// MaxStep is the ceiling applied to dt before integration. Frame hitches
// longer than this are silently clamped so a single large step cannot tunnel
// the player through an obstacle.
const MaxStep = 1.0 / 30.0

// Body is a kinematic body integrated under gravity. Position is the
// bottom-left corner of the body in world units, y-down: the ground contact
// point is Pos.Y itself.
type Body struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Grounded bool
}

// ClampStep limits dt to MaxStep. Negative dt collapses to zero.
func ClampStep(dt float64) float64 {
	return core.ClampF(dt, 0, MaxStep)
}

// Integrate advances the body by dt seconds under the given downward gravity
// and resolves ground contact against groundY. Gravity is a positive
// magnitude; y grows downward. Deterministic, no side effects beyond the
// returned body.
func Integrate(b Body, dt, gravity, groundY float64) Body {
	b.Vel.Y += gravity * dt
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	if b.Pos.Y >= groundY {
		b.Pos.Y = groundY
		b.Vel.Y = 0
		b.Grounded = true
	} else {
		b.Grounded = false
	}
	return b
}
