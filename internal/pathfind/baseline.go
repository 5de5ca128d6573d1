package pathfind

// ComputeBaseline runs the same search without jump point pruning: every
// enterable neighbour of an expanded node is relaxed directly. It is
// kept as the regression oracle for Compute — both must agree on
// reachability and on path cost — and shares the open/closed discipline,
// metrics and reconstruction with the optimized search.
func ComputeBaseline(cells []bool, width, height, start, goal int) ([]int, error) {
	size := width * height
	if start < 0 || start >= size || goal < 0 || goal >= size {
		return nil, ErrInvalidArgs
	}

	s := &search{
		grid:     &grid{cells: cells, width: width, height: height},
		goal:     goal,
		gScore:   make([]float64, size),
		cameFrom: make([]int, size),
		closed:   make([]bool, size),
		open:     newIndexQueue(size),
	}

	gx, gy := s.grid.coord(goal)
	sx, sy := s.grid.coord(start)

	s.gScore[start] = 0
	s.cameFrom[start] = -1
	s.open.insert(start, estimateDistance(sx, sy, gx, gy))

	for s.open.size() > 0 {
		node, _ := s.open.findMin()
		nx, ny := s.grid.coord(node)
		if nx == gx && ny == gy {
			return s.reconstruct(start, node), nil
		}

		s.open.deleteMin()
		s.closed[node] = true

		for d := dirNorth; d <= dirNorthWest; d++ {
			cx, cy := stepToward(nx, ny, d)
			if !s.grid.enterable(cx, cy) {
				continue
			}
			neighbour := s.grid.index(cx, cy)
			if s.closed[neighbour] {
				continue
			}
			s.relax(neighbour, node)
		}
	}

	return nil, ErrNoPath
}
