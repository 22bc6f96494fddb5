package sim

// Difficulty curve constants. The curve is a pure function of elapsed run
// time, recomputed every tick, so restarts can never drift.
const (
	// TierSeconds is the width of one difficulty bracket.
	TierSeconds = 5.0
	// SpeedStepPerTier is the multiplier gained per completed bracket.
	SpeedStepPerTier = 0.15
	// SpeedCap bounds the speed multiplier.
	SpeedCap = 2.5
)

// spawnIntervals is the per-tier spawn cadence in seconds. Tiers past the
// last entry hold at the floor.
var spawnIntervals = [...]float64{4.0, 3.5, 3.0, 2.5}

// PatternComplexity is the ordinal tier controlling how many obstacles a
// spawn event emits.
type PatternComplexity int

const (
	ComplexitySingle  PatternComplexity = iota // one obstacle per event
	ComplexityMixed                            // one or two
	ComplexityPairs                            // exactly two
	ComplexityComplex                          // two or three
)

// String returns a human-readable name for the complexity tier.
func (c PatternComplexity) String() string {
	switch c {
	case ComplexitySingle:
		return "single"
	case ComplexityMixed:
		return "mixed"
	case ComplexityPairs:
		return "pairs"
	case ComplexityComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// Tier is the difficulty tuple derived from elapsed run time. It has no
// persisted identity.
type Tier struct {
	SpeedMultiplier float64
	SpawnInterval   float64
	Complexity      PatternComplexity
}

// tierIndex maps elapsed seconds to the completed-bracket count.
func tierIndex(elapsed float64) int {
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / TierSeconds)
}

// SpeedMultiplier returns min(1 + 0.15 * floor(t/5), 2.5). Non-decreasing
// in t and bounded above by SpeedCap.
func SpeedMultiplier(elapsed float64) float64 {
	m := 1 + SpeedStepPerTier*float64(tierIndex(elapsed))
	if m > SpeedCap {
		return SpeedCap
	}
	return m
}

// SpawnInterval returns the seconds between spawn events at elapsed time t,
// stepping 4.0 -> 3.5 -> 3.0 -> 2.5 on the tier boundaries and holding at
// the floor.
func SpawnInterval(elapsed float64) float64 {
	idx := tierIndex(elapsed)
	if idx >= len(spawnIntervals) {
		idx = len(spawnIntervals) - 1
	}
	return spawnIntervals[idx]
}

// Complexity returns the pattern complexity tier at elapsed time t, keyed to
// the same boundaries as the speed curve and holding at COMPLEX.
func Complexity(elapsed float64) PatternComplexity {
	idx := tierIndex(elapsed)
	if idx >= int(ComplexityComplex) {
		return ComplexityComplex
	}
	return PatternComplexity(idx)
}

// TierFor returns the full difficulty tuple for elapsed run time t.
// Idempotent: the same t always yields the same tuple.
func TierFor(elapsed float64) Tier {
	return Tier{
		SpeedMultiplier: SpeedMultiplier(elapsed),
		SpawnInterval:   SpawnInterval(elapsed),
		Complexity:      Complexity(elapsed),
	}
}
