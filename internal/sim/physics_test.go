package sim

import (
	"math"
	"testing"

	"github.com/mzhdanov/dashline/internal/core"
)

func TestClampStep(t *testing.T) {
	tests := []struct {
		name     string
		dt       float64
		expected float64
	}{
		{"normal frame", 1.0 / 60.0, 1.0 / 60.0},
		{"exactly the ceiling", MaxStep, MaxStep},
		{"hitch clamps", 0.25, MaxStep},
		{"huge pause clamps", 10.0, MaxStep},
		{"negative collapses to zero", -0.016, 0},
		{"zero passes through", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampStep(tc.dt); got != tc.expected {
				t.Errorf("ClampStep(%v) = %v, expected %v", tc.dt, got, tc.expected)
			}
		})
	}
}

func TestIntegrateRestsOnGround(t *testing.T) {
	b := Body{
		Pos:      core.Vec2{X: 120, Y: 400},
		Grounded: true,
	}

	for i := 0; i < 60; i++ {
		b = Integrate(b, 1.0/60.0, 800, 400)
	}

	if !b.Grounded {
		t.Error("Body resting on the ground should stay grounded")
	}
	if b.Pos.Y != 400 {
		t.Errorf("Pos.Y = %v, expected 400", b.Pos.Y)
	}
	if b.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v, expected 0 while grounded", b.Vel.Y)
	}
	if b.Pos.X != 120 {
		t.Errorf("Pos.X = %v, expected 120 (gravity must not move x)", b.Pos.X)
	}
}

func TestIntegrateJumpArcLands(t *testing.T) {
	const (
		dt      = 1.0 / 60.0
		gravity = 800.0
		impulse = 350.0
		groundY = 400.0
	)

	b := Body{
		Pos: core.Vec2{X: 120, Y: groundY},
		Vel: core.Vec2{Y: -impulse},
	}

	// Analytic flight time is 2*impulse/gravity = 0.875s. The discrete
	// integration lands within a tick or two of that.
	landed := -1
	minY := groundY
	for i := 1; i <= 120; i++ {
		b = Integrate(b, dt, gravity, groundY)
		minY = math.Min(minY, b.Pos.Y)
		if b.Grounded {
			landed = i
			break
		}
	}

	if landed < 0 {
		t.Fatal("Body never landed within two seconds")
	}
	landTime := float64(landed) * dt
	if landTime < 0.80 || landTime > 0.94 {
		t.Errorf("Landed at t=%.3fs, expected near the analytic 0.875s", landTime)
	}
	if b.Pos.Y != groundY {
		t.Errorf("Pos.Y = %v after landing, expected exactly %v", b.Pos.Y, groundY)
	}
	if b.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v after landing, expected 0", b.Vel.Y)
	}

	// The apex must come close to the analytic impulse²/(2g) = 76.56 rise.
	rise := groundY - minY
	if rise < 65 || rise > 80 {
		t.Errorf("Apex rise = %.2f, expected near the analytic 76.56", rise)
	}
}

func TestIntegrateNeverTunnelsBelowGround(t *testing.T) {
	b := Body{
		Pos: core.Vec2{X: 0, Y: 399.9},
		Vel: core.Vec2{Y: 5000},
	}

	b = Integrate(b, MaxStep, 800, 400)

	if b.Pos.Y != 400 {
		t.Errorf("Pos.Y = %v, expected clamp to the ground at 400", b.Pos.Y)
	}
	if !b.Grounded {
		t.Error("Body driven into the ground should be grounded")
	}
}
