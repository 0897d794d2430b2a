package engines

import "math"

// euclideanHeuristic is the default admissible, consistent heuristic
// under both connectivities, matching the one enginem and oracle use.
func euclideanHeuristic(ax, ay, bx, by int32) float64 {
	dx, dy := float64(bx-ax), float64(by-ay)
	return math.Hypot(dx, dy)
}
