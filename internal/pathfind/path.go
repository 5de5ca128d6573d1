package pathfind

// reconstruct expands the compressed predecessor chain into the full
// tile sequence. Only jump points were recorded, so each segment is
// interpolated one unit step at a time toward the current target; when
// the target is reached it advances to its own predecessor. The result
// is goal-first and drops the start tile.
func (s *search) reconstruct(start, end int) []int {
	out := make([]int, 0, 16)
	target := end
	node := end
	for {
		node = s.stepTowardTarget(node, &target)
		out = append(out, node)
		if node == start {
			break
		}
	}
	return out[:len(out)-1]
}

// stepTowardTarget moves the node one cell toward the target along each
// axis that still differs, yielding a cardinal or diagonal unit step.
// Arriving at the target shifts it to its predecessor.
func (s *search) stepTowardTarget(node int, target *int) int {
	x, y := s.grid.coord(node)
	tx, ty := s.grid.coord(*target)

	if x < tx {
		x++
	} else if x > tx {
		x--
	}
	if y < ty {
		y++
	} else if y > ty {
		y--
	}

	node = s.grid.index(x, y)
	if node == *target {
		*target = s.cameFrom[*target]
	}
	return node
}
