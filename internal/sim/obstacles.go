package sim

import (
	"fmt"
	"math/rand"

	"github.com/mzhdanov/dashline/internal/config"
	"github.com/mzhdanov/dashline/internal/core"
)

// ObstacleType classifies how an obstacle is cleared.
type ObstacleType int

const (
	// TypeHigh is a box on the ground that requires a jump.
	TypeHigh ObstacleType = iota
	// TypeLow is a hanging bar that requires a crouch.
	TypeLow
	// TypeGap is a ground void that requires a timed jump.
	TypeGap
)

// String returns a human-readable name for the obstacle type.
func (t ObstacleType) String() string {
	switch t {
	case TypeHigh:
		return "high"
	case TypeLow:
		return "low"
	case TypeGap:
		return "gap"
	default:
		return "unknown"
	}
}

// Obstacle is one live hazard. The id is monotonic and unique while the
// obstacle is live. Only the position advances after creation; size and type
// never change.
type Obstacle struct {
	ID   int64
	Pos  core.Vec2 // Top-left corner of the bounds
	Size core.Vec2
	Type ObstacleType

	passed bool // Set once the obstacle falls behind the player
}

// Bounds returns the obstacle's collision box.
func (o Obstacle) Bounds() core.AABB {
	return core.AABB{X: o.Pos.X, Y: o.Pos.Y, W: o.Size.X, H: o.Size.Y}
}

// Generator procedurally schedules obstacle spawns ahead of the player and
// owns the pool of live obstacles. All randomness flows through one seeded
// source so identical seeds and input timing reproduce identical sequences.
type Generator struct {
	cfg        *config.RunnerConfig
	rng        *rand.Rand
	obstacles  []Obstacle
	nextID     int64
	spawnTimer float64
}

// NewGenerator creates a generator with the given seed. The config must have
// passed Validate.
func NewGenerator(cfg *config.RunnerConfig, seed int64) *Generator {
	g := &Generator{
		cfg:       cfg,
		obstacles: make([]Obstacle, 0, 16),
	}
	g.Reset(seed)
	return g
}

// Reset discards all live obstacles and reseeds the random source.
func (g *Generator) Reset(seed int64) {
	g.obstacles = g.obstacles[:0]
	g.rng = rand.New(rand.NewSource(seed))
	g.nextID = 1
	g.spawnTimer = 0
}

// Obstacles returns the live obstacles in spawn order, which is also
// left-to-right spatial order. Callers must not mutate the slice.
func (g *Generator) Obstacles() []Obstacle {
	return g.obstacles
}

// Advance moves every live obstacle toward the player, retires off-screen
// ones, and fires spawn events on the tier's cadence. It returns the number
// of obstacles the player newly passed this tick. cameraX is the viewport's
// left edge; playerX is the player's left edge, used for pass counting.
func (g *Generator) Advance(dt float64, tier Tier, cameraX, playerX float64) int {
	speed := g.cfg.Physics.BaseSpeed * tier.SpeedMultiplier

	// Horizontal advance: obstacles move toward the player.
	dx := speed * dt
	for i := range g.obstacles {
		g.obstacles[i].Pos.X -= dx
	}

	// Pass counting. Obstacles advance uniformly, so they pass in order.
	passed := 0
	for i := range g.obstacles {
		o := &g.obstacles[i]
		if o.passed {
			continue
		}
		if o.Bounds().Right() >= playerX {
			break
		}
		o.passed = true
		passed++
	}

	// Retirement: order-preserving compaction of anything behind the
	// trailing culling boundary.
	cullX := cameraX - g.cfg.World.CullMargin
	live := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.Bounds().Right() >= cullX {
			live = append(live, o)
		}
	}
	g.obstacles = live

	// Spawn cadence. The timer carries its overshoot across events so the
	// cadence does not drift under variable frame times.
	g.spawnTimer += dt
	for g.spawnTimer >= tier.SpawnInterval {
		g.spawnTimer -= tier.SpawnInterval
		g.spawnEvent(tier, speed)
	}

	return passed
}

// spawnEvent emits one pattern of obstacles ahead of everything live.
func (g *Generator) spawnEvent(tier Tier, speed float64) {
	gap := g.cfg.MinSafeGap(speed)

	// Place ahead of the viewport, and never closer than the safe gap to the
	// rightmost live obstacle.
	x := g.cfg.World.Width + g.cfg.Spawn.LeadDistance
	if n := len(g.obstacles); n > 0 {
		if after := g.obstacles[n-1].Bounds().Right() + gap; after > x {
			x = after
		}
	}

	count := g.eventCount(tier.Complexity)
	for i := 0; i < count; i++ {
		o := g.makeObstacle(g.drawType(tier.Complexity), x)

		if n := len(g.obstacles); n > 0 {
			if spacing := o.Pos.X - g.obstacles[n-1].Bounds().Right(); spacing < gap-1e-9 {
				// Placement below the validated safe gap signals a tuning
				// defect in the spawn constants, not a runtime condition.
				panic(fmt.Sprintf("sim: obstacle %d placed %.1f behind the safe gap %.1f", o.ID, gap-spacing, gap))
			}
		}

		g.obstacles = append(g.obstacles, o)
		x = o.Bounds().Right() + gap
	}
}

// eventCount returns how many obstacles this event emits.
func (g *Generator) eventCount(c PatternComplexity) int {
	switch c {
	case ComplexitySingle:
		return 1
	case ComplexityMixed:
		return 1 + g.rng.Intn(2)
	case ComplexityPairs:
		return 2
	default:
		return 2 + g.rng.Intn(2)
	}
}

// drawType selects an obstacle type by weighted draw. Weights are per
// complexity tier; tiers past the configured table reuse its last entry.
func (g *Generator) drawType(c PatternComplexity) ObstacleType {
	weights := g.cfg.Spawn.Weights
	idx := int(c)
	if idx >= len(weights) {
		idx = len(weights) - 1
	}
	w := weights[idx]

	total := w.High + w.Low + w.Gap
	r := g.rng.Intn(total)
	switch {
	case r < w.High:
		return TypeHigh
	case r < w.High+w.Low:
		return TypeLow
	default:
		return TypeGap
	}
}

// makeObstacle builds an obstacle of the given type with its left edge at x.
func (g *Generator) makeObstacle(t ObstacleType, x float64) Obstacle {
	groundY := g.cfg.World.GroundY
	var pos, size core.Vec2

	switch t {
	case TypeHigh:
		c := g.cfg.Obstacles.High
		pos = core.Vec2{X: x, Y: groundY - c.Height}
		size = core.Vec2{X: c.Width, Y: c.Height}
	case TypeLow:
		c := g.cfg.Obstacles.Low
		pos = core.Vec2{X: x, Y: groundY - c.Clearance - c.Height}
		size = core.Vec2{X: c.Width, Y: c.Height}
	case TypeGap:
		c := g.cfg.Obstacles.Gap
		// The pit hitbox pokes a small lip above the ground line so a
		// grounded player overlaps it while an airborne one clears it.
		pos = core.Vec2{X: x, Y: groundY - c.Lip}
		size = core.Vec2{X: c.Width, Y: g.cfg.World.Height - (groundY - c.Lip)}
	}

	o := Obstacle{
		ID:   g.nextID,
		Pos:  pos,
		Size: size,
		Type: t,
	}
	g.nextID++
	return o
}
