package sim

import "github.com/mzhdanov/dashline/internal/core"

// Phase is the top-level game state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// PlayerView is the drawable player primitive.
type PlayerView struct {
	Pos    core.Vec2
	Bounds core.AABB
	State  PlayerState
}

// ObstacleView is one drawable obstacle primitive, in spawn order.
type ObstacleView struct {
	ID     int64
	Pos    core.Vec2
	Bounds core.AABB
	Type   ObstacleType
}

// FrameOutput is the immutable snapshot handed to the presentation layer
// after each Advance call. The slices are freshly allocated every tick, so a
// render thread may hold a FrameOutput without touching core state.
type FrameOutput struct {
	Phase     Phase
	Player    PlayerView
	Obstacles []ObstacleView
	Score     int
	Elapsed   float64
}
