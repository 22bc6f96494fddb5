package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML = %+v,\nexpected DefaultConfig() %+v", cfg, DefaultConfig())
	}
}

func TestValidateRejectsBadTunings(t *testing.T) {
	tests := []struct {
		name  string
		mutate func(*RunnerConfig)
	}{
		{"zero gravity", func(c *RunnerConfig) { c.Physics.Gravity = 0 }},
		{"negative impulse", func(c *RunnerConfig) { c.Physics.JumpImpulse = -350 }},
		{"zero base speed", func(c *RunnerConfig) { c.Physics.BaseSpeed = 0 }},
		{"ground outside world", func(c *RunnerConfig) { c.World.GroundY = 500 }},
		{"crouch fraction one", func(c *RunnerConfig) { c.Player.CrouchFraction = 1 }},
		{"hitbox scale above one", func(c *RunnerConfig) { c.Player.HitboxScale = 1.2 }},
		{"high obstacle above apex", func(c *RunnerConfig) { c.Obstacles.High.Height = 200 }},
		{"low clearance under crouch", func(c *RunnerConfig) { c.Obstacles.Low.Clearance = 20 }},
		{"low clearance over standing", func(c *RunnerConfig) { c.Obstacles.Low.Clearance = 80 }},
		{"gap wider than jump arc", func(c *RunnerConfig) { c.Obstacles.Gap.Width = 300 }},
		{"lip below hitbox inset", func(c *RunnerConfig) { c.Obstacles.Gap.Lip = 5 }},
		{"no weight tiers", func(c *RunnerConfig) { c.Spawn.Weights = nil }},
		{"zero-sum weights", func(c *RunnerConfig) { c.Spawn.Weights[0] = TypeWeights{} }},
		{"negative weight", func(c *RunnerConfig) { c.Spawn.Weights[1].Gap = -1 }},
		{"negative score", func(c *RunnerConfig) { c.Gameplay.ScorePerSecond = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, expected an error")
			}
		})
	}
}

func TestAirTimeAndApex(t *testing.T) {
	cfg := DefaultConfig()

	// 2 * 350 / 800
	if got := cfg.AirTime(); math.Abs(got-0.875) > 1e-9 {
		t.Errorf("AirTime() = %v, expected 0.875", got)
	}
	// 350² / (2 * 800)
	if got := cfg.JumpApex(); math.Abs(got-76.5625) > 1e-9 {
		t.Errorf("JumpApex() = %v, expected 76.5625", got)
	}
}

func TestMinSafeGapGrowsWithSpeed(t *testing.T) {
	cfg := DefaultConfig()

	base := cfg.MinSafeGap(cfg.Physics.BaseSpeed)
	expected := cfg.Physics.BaseSpeed*cfg.AirTime() + cfg.Player.Width + cfg.Spawn.SafetyMargin
	if math.Abs(base-expected) > 1e-9 {
		t.Errorf("MinSafeGap(base) = %v, expected %v", base, expected)
	}

	fast := cfg.MinSafeGap(cfg.Physics.BaseSpeed * 2.5)
	if fast <= base {
		t.Errorf("MinSafeGap at 2.5x = %v, expected above the base %v", fast, base)
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultConfig()

	forgiving := DefaultConfig()
	ApplyPreset(&forgiving, PresetForgiving)
	if forgiving.Player.HitboxScale >= base.Player.HitboxScale {
		t.Error("Forgiving preset should shrink the hitbox")
	}
	if forgiving.Spawn.SafetyMargin <= base.Spawn.SafetyMargin {
		t.Error("Forgiving preset should widen the safety margin")
	}
	if err := forgiving.Validate(); err != nil {
		t.Errorf("Forgiving preset does not validate: %v", err)
	}

	brutal := DefaultConfig()
	ApplyPreset(&brutal, PresetBrutal)
	if brutal.Player.HitboxScale <= base.Player.HitboxScale {
		t.Error("Brutal preset should grow the hitbox")
	}
	if brutal.Physics.BaseSpeed <= base.Physics.BaseSpeed {
		t.Error("Brutal preset should raise the base speed")
	}
	if err := brutal.Validate(); err != nil {
		t.Errorf("Brutal preset does not validate: %v", err)
	}

	standard := DefaultConfig()
	ApplyPreset(&standard, PresetStandard)
	if !reflect.DeepEqual(standard, base) {
		t.Error("Standard preset should leave the config untouched")
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "runner.yaml")

	custom := DefaultConfig()
	custom.Physics.BaseSpeed = 250
	data, err := yaml.Marshal(custom)
	if err != nil {
		t.Fatalf("yaml.Marshal() failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Physics.BaseSpeed != 250 {
		t.Errorf("BaseSpeed = %v, expected the custom 250", cfg.Physics.BaseSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	// An invalid tuning in an explicit config is a hard error.
	path := filepath.Join(t.TempDir(), "broken.yaml")
	bad := DefaultConfig()
	bad.Physics.Gravity = -1
	data, _ := yaml.Marshal(bad)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of an invalid tuning should fail validation")
	}
}
