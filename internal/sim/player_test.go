package sim

import (
	"math"
	"testing"

	"github.com/mzhdanov/dashline/internal/config"
	"github.com/mzhdanov/dashline/internal/core"
)

func testConfig(t *testing.T) config.RunnerConfig {
	t.Helper()
	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig() does not validate: %v", err)
	}
	return cfg
}

func TestPlayerIdleStaysRunning(t *testing.T) {
	cfg := testConfig(t)
	p := NewPlayer(&cfg)

	for i := 0; i < 60; i++ {
		p = p.Update(core.Input{}, 1.0/60.0, &cfg)
	}

	if p.State != StateRunning {
		t.Errorf("State = %v, expected running", p.State)
	}
	if p.Body.Pos.Y != cfg.World.GroundY {
		t.Errorf("Pos.Y = %v, expected the ground line %v", p.Body.Pos.Y, cfg.World.GroundY)
	}
	if p.Body.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v, expected 0 while grounded", p.Body.Vel.Y)
	}
}

func TestPlayerJumpAndLand(t *testing.T) {
	cfg := testConfig(t)
	p := NewPlayer(&cfg)

	p = p.Update(core.Input{Jump: true}, 1.0/60.0, &cfg)
	if p.State != StateJumping {
		t.Fatalf("State = %v after jump, expected jumping", p.State)
	}
	if p.Body.Grounded {
		t.Fatal("Player should leave the ground on the jump tick")
	}

	landed := -1
	for i := 2; i <= 120; i++ {
		p = p.Update(core.Input{}, 1.0/60.0, &cfg)
		if p.Body.Grounded {
			landed = i
			break
		}
	}

	if landed < 0 {
		t.Fatal("Player never landed")
	}
	landTime := float64(landed) / 60.0
	if landTime < 0.80 || landTime > 0.94 {
		t.Errorf("Landed at t=%.3fs, expected near 0.875s", landTime)
	}
	if p.State != StateRunning {
		t.Errorf("State = %v after landing, expected running", p.State)
	}
}

func TestPlayerNoDoubleJump(t *testing.T) {
	cfg := testConfig(t)
	const dt = 1.0 / 60.0
	p := NewPlayer(&cfg)

	p = p.Update(core.Input{Jump: true}, dt, &cfg)

	// A second jump press mid-air must not re-apply the impulse: the
	// velocity only sees gravity.
	p = p.Update(core.Input{Jump: true}, dt, &cfg)
	expected := -cfg.Physics.JumpImpulse + 2*cfg.Physics.Gravity*dt
	if math.Abs(p.Body.Vel.Y-expected) > 1e-9 {
		t.Errorf("Vel.Y = %v after mid-air jump press, expected %v (gravity only)", p.Body.Vel.Y, expected)
	}
	if p.State != StateJumping {
		t.Errorf("State = %v, expected jumping", p.State)
	}
}

func TestPlayerCrouch(t *testing.T) {
	cfg := testConfig(t)
	const dt = 1.0 / 60.0
	p := NewPlayer(&cfg)

	p = p.Update(core.Input{Crouch: true}, dt, &cfg)
	if p.State != StateCrouching {
		t.Fatalf("State = %v while crouch held, expected crouching", p.State)
	}

	standingH := cfg.Player.Height
	b := p.Bounds(&cfg)
	if b.H != standingH*cfg.Player.CrouchFraction {
		t.Errorf("Crouch height = %v, expected %v", b.H, standingH*cfg.Player.CrouchFraction)
	}
	if b.Bottom() != cfg.World.GroundY {
		t.Errorf("Crouch bottom = %v, expected anchored at the ground %v", b.Bottom(), cfg.World.GroundY)
	}

	p = p.Update(core.Input{}, dt, &cfg)
	if p.State != StateRunning {
		t.Errorf("State = %v after release, expected running", p.State)
	}
	if got := p.Bounds(&cfg).H; got != standingH {
		t.Errorf("Height = %v after release, expected %v", got, standingH)
	}
}

func TestPlayerJumpWinsOverCrouch(t *testing.T) {
	cfg := testConfig(t)
	p := NewPlayer(&cfg)

	p = p.Update(core.Input{Jump: true, Crouch: true}, 1.0/60.0, &cfg)
	if p.State != StateJumping {
		t.Errorf("State = %v for simultaneous jump+crouch, expected jumping", p.State)
	}
}

func TestPlayerCrouchIgnoredMidAir(t *testing.T) {
	cfg := testConfig(t)
	const dt = 1.0 / 60.0
	p := NewPlayer(&cfg)

	p = p.Update(core.Input{Jump: true}, dt, &cfg)
	p = p.Update(core.Input{Crouch: true}, dt, &cfg)

	if p.State != StateJumping {
		t.Errorf("State = %v for crouch mid-air, expected jumping", p.State)
	}
	if got := p.Bounds(&cfg).H; got != cfg.Player.Height {
		t.Errorf("Height = %v mid-air with crouch held, expected standing %v", got, cfg.Player.Height)
	}
}

func TestPlayerLandsIntoCrouchWhenHeld(t *testing.T) {
	cfg := testConfig(t)
	const dt = 1.0 / 60.0
	p := NewPlayer(&cfg)

	p = p.Update(core.Input{Jump: true}, dt, &cfg)
	for i := 0; i < 120 && !p.Body.Grounded; i++ {
		p = p.Update(core.Input{Crouch: true}, dt, &cfg)
	}

	if !p.Body.Grounded {
		t.Fatal("Player never landed")
	}
	if p.State != StateCrouching {
		t.Errorf("State = %v on landing with crouch held, expected crouching", p.State)
	}
}

func TestPlayerDeadIsTerminal(t *testing.T) {
	cfg := testConfig(t)
	p := NewPlayer(&cfg)
	p = p.Kill()

	before := p.Body
	for _, in := range []core.Input{{Jump: true}, {Crouch: true}, {}} {
		p = p.Update(in, 1.0/60.0, &cfg)
		if p.State != StateDead {
			t.Fatalf("State = %v after input %+v, expected dead", p.State, in)
		}
	}
	if p.Body != before {
		t.Errorf("Body changed while dead: %+v, expected %+v", p.Body, before)
	}
}

func TestPlayerHitboxInsideBounds(t *testing.T) {
	cfg := testConfig(t)
	p := NewPlayer(&cfg)

	b := p.Bounds(&cfg)
	h := p.Hitbox(&cfg)

	if h.W >= b.W || h.H >= b.H {
		t.Errorf("Hitbox %vx%v not smaller than bounds %vx%v", h.W, h.H, b.W, b.H)
	}
	if h.X <= b.X || h.Right() >= b.Right() || h.Y <= b.Y || h.Bottom() >= b.Bottom() {
		t.Errorf("Hitbox %+v not strictly inside bounds %+v", h, b)
	}

	// Shrink is centered: equal margins left/right and top/bottom.
	if math.Abs((h.X-b.X)-(b.Right()-h.Right())) > 1e-9 {
		t.Errorf("Horizontal margins differ: %v vs %v", h.X-b.X, b.Right()-h.Right())
	}
	if math.Abs((h.Y-b.Y)-(b.Bottom()-h.Bottom())) > 1e-9 {
		t.Errorf("Vertical margins differ: %v vs %v", h.Y-b.Y, b.Bottom()-h.Bottom())
	}
}
