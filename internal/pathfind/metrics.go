package pathfind

import "math"

// estimateDistance is the open-set heuristic: Chebyshev distance.
// Admissible for an eight-connected uniform-cost grid and never above
// the Euclidean cost actually charged between jump points.
func estimateDistance(ax, ay, bx, by int) float64 {
	return math.Max(math.Abs(float64(ax-bx)), math.Abs(float64(ay-by)))
}

// preciseDistance is the exact cost between two cells lying on a shared
// ray, which is the only way the search ever pairs jump points: the
// Euclidean length when both axes differ, otherwise the straight run
// length. Jumped-over interior cells still have to be paid for, so the
// cost cannot be collapsed to 1 per edge.
func preciseDistance(ax, ay, bx, by int) float64 {
	dx := ax - bx
	dy := ay - by
	if dx != 0 && dy != 0 {
		return math.Sqrt(float64(dx*dx + dy*dy))
	}
	return math.Abs(float64(dx)) + math.Abs(float64(dy))
}

// PathCost returns the octile cost of a path produced by Compute or
// ComputeBaseline: unit cost per cardinal step, √2 per diagonal step,
// walked from the start tile through the goal-first path.
func PathCost(width, start int, path []int) float64 {
	cost := 0.0
	prev := start
	for i := len(path) - 1; i >= 0; i-- {
		px, py := ToCoord(width, prev)
		cx, cy := ToCoord(width, path[i])
		if px != cx && py != cy {
			cost += math.Sqrt2
		} else {
			cost++
		}
		prev = path[i]
	}
	return cost
}
