// Package config provides YAML-based tuning configuration for the runner:
// world dimensions, physics constants, player and obstacle shapes, spawn
// weights, and scoring. Loaded values are validated against the clearability
// invariants before a game is ever constructed, so a tuning defect fails at
// startup instead of producing an unfair obstacle mid-run.
package config

// RunnerConfig contains all tuning for the runner simulation.
type RunnerConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
}

// WorldConfig defines the fixed world-space viewport. Units are abstract
// world units with y growing downward; the renderer scales them to cells.
type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	GroundY    float64 `yaml:"ground_y"`
	CullMargin float64 `yaml:"cull_margin"` // Distance behind the camera at which obstacles retire
}

// PhysicsConfig defines the kinematic constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Positive magnitude, applied downward (u/s²)
	JumpImpulse float64 `yaml:"jump_impulse"` // Positive magnitude, applied upward on jump (u/s)
	BaseSpeed   float64 `yaml:"base_speed"`   // Horizontal scroll speed at 1.0x difficulty (u/s)
}

// PlayerConfig defines the player's placement and hitbox shape.
type PlayerConfig struct {
	X              float64 `yaml:"x"`               // Fixed world x of the player's left edge
	Width          float64 `yaml:"width"`           // Standing visual width
	Height         float64 `yaml:"height"`          // Standing visual height
	CrouchFraction float64 `yaml:"crouch_fraction"` // Crouching height as a fraction of standing
	HitboxScale    float64 `yaml:"hitbox_scale"`    // Forgiveness: hitbox size relative to visual bounds
}

// HighConfig defines the jump-over obstacle: a box sitting on the ground.
type HighConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LowConfig defines the crouch-under obstacle: a bar hanging above the
// ground. Clearance is the free space between the ground line and the bar's
// bottom edge; it must fit a crouching player but not a standing one.
type LowConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Clearance float64 `yaml:"clearance"`
}

// GapConfig defines the ground-void obstacle. The pit hitbox extends Lip
// units above the ground line so a grounded player falls in while any
// airborne player clears it.
type GapConfig struct {
	Width float64 `yaml:"width"`
	Lip   float64 `yaml:"lip"`
}

// ObstaclesConfig defines the shape of each obstacle type.
type ObstaclesConfig struct {
	High HighConfig `yaml:"high"`
	Low  LowConfig  `yaml:"low"`
	Gap  GapConfig  `yaml:"gap"`
}

// TypeWeights are the relative weights for the random obstacle type draw.
type TypeWeights struct {
	High int `yaml:"high"`
	Low  int `yaml:"low"`
	Gap  int `yaml:"gap"`
}

// SpawnConfig defines obstacle placement tuning. Weights holds one entry per
// pattern-complexity tier (SINGLE, MIXED, PAIRS, COMPLEX); the gap weight
// conventionally grows with the tier.
type SpawnConfig struct {
	LeadDistance float64       `yaml:"lead_distance"` // Minimum distance new spawns keep ahead of the viewport
	SafetyMargin float64       `yaml:"safety_margin"` // Landing slack added to the jump arc in the safe-gap rule
	Weights      []TypeWeights `yaml:"weights"`
}

// GameplayConfig defines scoring.
type GameplayConfig struct {
	ScorePerSecond   int `yaml:"score_per_second"`
	ScorePerObstacle int `yaml:"score_per_obstacle"`
}

// AirTime returns the duration of a full jump arc from takeoff to landing:
// 2 * impulse / gravity.
func (c RunnerConfig) AirTime() float64 {
	return 2 * c.Physics.JumpImpulse / c.Physics.Gravity
}

// JumpApex returns the maximum height gained during a jump:
// impulse² / (2 * gravity).
func (c RunnerConfig) JumpApex() float64 {
	return c.Physics.JumpImpulse * c.Physics.JumpImpulse / (2 * c.Physics.Gravity)
}

// MinSafeGap returns the smallest horizontal spacing between obstacles that
// still permits the player's maximum jump arc to clear them at the given
// scroll speed.
func (c RunnerConfig) MinSafeGap(speed float64) float64 {
	return speed*c.AirTime() + c.Player.Width + c.Spawn.SafetyMargin
}

// Preset is a named tuning preset selectable from the CLI.
type Preset string

const (
	PresetForgiving Preset = "forgiving"
	PresetStandard  Preset = "standard"
	PresetBrutal    Preset = "brutal"
)

// ApplyPreset adjusts the config in place for a named preset. Unknown presets
// leave the config untouched.
func ApplyPreset(cfg *RunnerConfig, preset Preset) {
	switch preset {
	case PresetForgiving:
		cfg.Player.HitboxScale = 0.7
		cfg.Spawn.SafetyMargin += 20
	case PresetBrutal:
		cfg.Player.HitboxScale = 0.9
		cfg.Physics.BaseSpeed *= 1.15
	}
}
