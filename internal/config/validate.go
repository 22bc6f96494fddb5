package config

import (
	"errors"
	"fmt"
)

// Validate checks the clearability invariants that make every generated
// obstacle pattern physically passable. A violation is a tuning defect, not
// a runtime condition: callers must refuse to start a game with an invalid
// config.
func (c RunnerConfig) Validate() error {
	if c.Physics.Gravity <= 0 {
		return errors.New("physics.gravity must be positive")
	}
	if c.Physics.JumpImpulse <= 0 {
		return errors.New("physics.jump_impulse must be positive")
	}
	if c.Physics.BaseSpeed <= 0 {
		return errors.New("physics.base_speed must be positive")
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return errors.New("world dimensions must be positive")
	}
	if c.World.GroundY <= 0 || c.World.GroundY >= c.World.Height {
		return errors.New("world.ground_y must lie inside the world")
	}
	if c.World.CullMargin < 0 {
		return errors.New("world.cull_margin must be non-negative")
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return errors.New("player dimensions must be positive")
	}
	if c.Player.CrouchFraction <= 0 || c.Player.CrouchFraction >= 1 {
		return errors.New("player.crouch_fraction must be in (0, 1)")
	}
	if c.Player.HitboxScale <= 0 || c.Player.HitboxScale > 1 {
		return errors.New("player.hitbox_scale must be in (0, 1]")
	}

	// A HIGH obstacle must be jumpable: its top must sit below the player's
	// bottom edge at the jump apex.
	apex := c.JumpApex()
	if c.Obstacles.High.Height >= apex {
		return fmt.Errorf("obstacles.high.height %.1f is not jumpable (apex %.1f)", c.Obstacles.High.Height, apex)
	}

	// A LOW bar must block a standing player but clear a crouching one.
	crouchH := c.Player.Height * c.Player.CrouchFraction
	if c.Obstacles.Low.Clearance <= crouchH {
		return fmt.Errorf("obstacles.low.clearance %.1f does not clear a crouching player (%.1f)", c.Obstacles.Low.Clearance, crouchH)
	}
	if c.Obstacles.Low.Clearance >= c.Player.Height {
		return fmt.Errorf("obstacles.low.clearance %.1f clears a standing player (%.1f)", c.Obstacles.Low.Clearance, c.Player.Height)
	}

	// A GAP must be jumpable at the slowest scroll speed; faster speeds only
	// lengthen the arc. The pit lip must stay below the apex.
	arc := c.Physics.BaseSpeed * c.AirTime()
	if c.Obstacles.Gap.Width+c.Player.Width >= arc {
		return fmt.Errorf("obstacles.gap.width %.1f is not jumpable (arc %.1f at base speed)", c.Obstacles.Gap.Width, arc)
	}
	if c.Obstacles.Gap.Lip <= 0 || c.Obstacles.Gap.Lip >= apex {
		return fmt.Errorf("obstacles.gap.lip %.1f must be in (0, apex %.1f)", c.Obstacles.Gap.Lip, apex)
	}
	// The hitbox shrink insets the player's bottom edge; the lip must rise
	// above that inset or a grounded player never overlaps the pit.
	inset := c.Player.Height * (1 - c.Player.HitboxScale) / 2
	if c.Obstacles.Gap.Lip <= inset {
		return fmt.Errorf("obstacles.gap.lip %.1f does not reach the grounded hitbox (inset %.1f)", c.Obstacles.Gap.Lip, inset)
	}

	if len(c.Spawn.Weights) == 0 {
		return errors.New("spawn.weights must have at least one tier")
	}
	for i, w := range c.Spawn.Weights {
		if w.High < 0 || w.Low < 0 || w.Gap < 0 {
			return fmt.Errorf("spawn.weights[%d] must be non-negative", i)
		}
		if w.High+w.Low+w.Gap == 0 {
			return fmt.Errorf("spawn.weights[%d] must not sum to zero", i)
		}
	}
	if c.Spawn.LeadDistance < 0 || c.Spawn.SafetyMargin < 0 {
		return errors.New("spawn distances must be non-negative")
	}

	// The spawn cadence floor must leave at least the safe gap between
	// consecutive events at any reachable speed. Event spacing is
	// interval*speed while the safe gap is arc+constants, so the tightest
	// ratio is at the lowest speed; checking base speed covers all tiers.
	const minInterval = 2.5 // Spawn interval floor (seconds), see sim difficulty curve
	if minInterval*c.Physics.BaseSpeed <= c.MinSafeGap(c.Physics.BaseSpeed) {
		return errors.New("spawn interval floor violates the minimum safe gap at base speed")
	}

	if c.Gameplay.ScorePerSecond < 0 || c.Gameplay.ScorePerObstacle < 0 {
		return errors.New("gameplay score values must be non-negative")
	}

	return nil
}
