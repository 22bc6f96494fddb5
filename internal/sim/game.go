package sim

import (
	"github.com/mzhdanov/dashline/internal/config"
	"github.com/mzhdanov/dashline/internal/core"
)

// cameraX is the viewport's left edge. The player's world x is fixed and
// obstacles carry all the relative motion, so the camera never moves.
const cameraX = 0

// RunState holds the per-run counters. It is discarded and recreated
// wholesale on every reset; nothing survives a restart.
type RunState struct {
	Elapsed float64 // Survival time in seconds
	Passed  int     // Obstacles passed
	Score   int
}

// Game is the orchestrator: the single owner of the player, the run state,
// and the obstacle generator. Advance is the only entry point; it runs the
// sub-phases in a fixed order (player physics, difficulty lookup, obstacle
// advance/spawn/retire, collision test, state transition) and returns an
// immutable snapshot. Single-threaded by contract: one call per rendered
// frame, no blocking, no concurrent mutation.
type Game struct {
	cfg    config.RunnerConfig
	seed   int64
	phase  Phase
	player Player
	run    RunState
	gen    *Generator
}

// NewGame creates a game in the menu phase. The config must have passed
// Validate; the seed drives every random draw of the run.
func NewGame(cfg config.RunnerConfig, seed int64) *Game {
	g := &Game{
		cfg:  cfg,
		seed: seed,
	}
	g.gen = NewGenerator(&g.cfg, seed)
	g.player = NewPlayer(&g.cfg)
	return g
}

// Reseed sets the seed used by the next run. It does not disturb a run in
// progress.
func (g *Game) Reseed(seed int64) {
	g.seed = seed
}

// Phase returns the current top-level phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// reset discards the player and run state wholesale and starts a new run.
func (g *Game) reset() {
	g.player = NewPlayer(&g.cfg)
	g.run = RunState{}
	g.gen.Reset(g.seed)
	g.phase = PhasePlaying
}

// Advance advances the simulation by dt seconds with the given input
// snapshot and returns the frame to present. dt is clamped internally.
func (g *Game) Advance(dt float64, in core.Input) FrameOutput {
	dt = ClampStep(dt)

	switch g.phase {
	case PhaseMenu:
		if in.Start {
			g.reset()
		}
	case PhaseGameOver:
		if in.Restart || in.Start {
			g.reset()
		}
	case PhasePlaying:
		// Restart while playing is a no-op; only ticking happens here.
		g.tick(dt, in)
	}

	return g.snapshot()
}

// tick runs one simulation step of a live run.
func (g *Game) tick(dt float64, in core.Input) {
	g.run.Elapsed += dt
	tier := TierFor(g.run.Elapsed)

	g.player = g.player.Update(in, dt, &g.cfg)

	passed := g.gen.Advance(dt, tier, cameraX, g.player.Body.Pos.X)
	g.run.Passed += passed
	g.run.Score = int(g.run.Elapsed)*g.cfg.Gameplay.ScorePerSecond +
		g.run.Passed*g.cfg.Gameplay.ScorePerObstacle

	// Collision must see obstacles after they have moved this tick.
	res := CheckCollision(g.player.Hitbox(&g.cfg), g.gen.Obstacles())
	if res.Hit {
		g.player = g.player.Kill()
		g.phase = PhaseGameOver
	}
}

// snapshot builds the immutable frame output for the presentation layer.
func (g *Game) snapshot() FrameOutput {
	live := g.gen.Obstacles()
	views := make([]ObstacleView, len(live))
	for i, o := range live {
		views[i] = ObstacleView{
			ID:     o.ID,
			Pos:    o.Pos,
			Bounds: o.Bounds(),
			Type:   o.Type,
		}
	}

	return FrameOutput{
		Phase: g.phase,
		Player: PlayerView{
			Pos:    g.player.Body.Pos,
			Bounds: g.player.Bounds(&g.cfg),
			State:  g.player.State,
		},
		Obstacles: views,
		Score:     g.run.Score,
		Elapsed:   g.run.Elapsed,
	}
}
