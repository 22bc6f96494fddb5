package sim

import "github.com/mzhdanov/dashline/internal/core"

// CollisionResult reports the outcome of a collision test.
type CollisionResult struct {
	Hit        bool
	ObstacleID int64
}

// CheckCollision tests the player's margin-shrunk hitbox against every live
// obstacle in spawn order and returns the first overlap. Any overlap, however
// small, is a hit; the fairness margin is applied entirely in the hitbox.
func CheckCollision(hitbox core.AABB, obstacles []Obstacle) CollisionResult {
	for _, o := range obstacles {
		if hitbox.Overlaps(o.Bounds()) {
			return CollisionResult{Hit: true, ObstacleID: o.ID}
		}
	}
	return CollisionResult{}
}
