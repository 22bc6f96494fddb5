package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultConfig returns the built-in runner configuration. It mirrors the
// embedded defaults/runner.yaml and serves as the last-resort fallback if
// the embedded YAML fails to parse.
func DefaultConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:      800,
			Height:     450,
			GroundY:    400,
			CullMargin: 100,
		},
		Physics: PhysicsConfig{
			Gravity:     800,
			JumpImpulse: 350,
			BaseSpeed:   200,
		},
		Player: PlayerConfig{
			X:              120,
			Width:          28,
			Height:         60,
			CrouchFraction: 0.5,
			HitboxScale:    0.8,
		},
		Obstacles: ObstaclesConfig{
			High: HighConfig{Width: 30, Height: 45},
			Low:  LowConfig{Width: 30, Height: 25, Clearance: 40},
			Gap:  GapConfig{Width: 70, Lip: 12},
		},
		Spawn: SpawnConfig{
			LeadDistance: 60,
			SafetyMargin: 40,
			Weights: []TypeWeights{
				{High: 45, Low: 45, Gap: 10},
				{High: 40, Low: 40, Gap: 20},
				{High: 35, Low: 35, Gap: 30},
				{High: 30, Low: 30, Gap: 40},
			},
		},
		Gameplay: GameplayConfig{
			ScorePerSecond:   10,
			ScorePerObstacle: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration YAML, for the
// `config` CLI command and documentation.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
