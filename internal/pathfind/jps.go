package pathfind

import "errors"

var (
	// ErrInvalidArgs reports a start or goal node outside the grid.
	ErrInvalidArgs = errors.New("pathfind: start or goal out of range")

	// ErrNoPath reports that the open set drained before the goal was
	// reached.
	ErrNoPath = errors.New("pathfind: no path exists")
)

// search holds the per-invocation state of one Compute call. Nothing
// here outlives the call, so concurrent searches on separate grids
// never share state.
type search struct {
	grid     *grid
	goal     int
	gScore   []float64
	cameFrom []int
	closed   []bool
	open     *indexQueue
}

// Compute finds a shortest path on a uniform-cost eight-connected grid
// using jump point search. cells is the passability bitmap, indexed by
// x + y*width, and is only read. The returned path is goal-first and
// excludes the start tile; when start == goal it is empty.
//
// Compute returns ErrInvalidArgs when start or goal lies outside
// [0, width*height) and ErrNoPath when the goal is unreachable.
func Compute(cells []bool, width, height, start, goal int) ([]int, error) {
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

		from := dirNone
		if parent := s.cameFrom[node]; parent != -1 {
			px, py := s.grid.coord(parent)
			from = moveDirection(px, py, nx, ny)
		}

		for d := dirNorth; d <= dirNorthWest; d++ {
			if !isOptimalTurn(d, from) {
				continue
			}
			jp := s.jump(d, node)
			if jp < 0 || s.closed[jp] {
				continue
			}
			s.relax(jp, node)
		}
	}

	return nil, ErrNoPath
}

// relax records or improves the route to a jump point. On improvement
// the open-set priority shifts by exactly the g-score delta, keeping
// the heuristic term intact.
func (s *search) relax(jp, node int) {
	nx, ny := s.grid.coord(node)
	jx, jy := s.grid.coord(jp)
	tentative := s.gScore[node] + preciseDistance(nx, ny, jx, jy)

	if !s.open.exists(jp) {
		gx, gy := s.grid.coord(s.goal)
		s.cameFrom[jp] = node
		s.gScore[jp] = tentative
		s.open.insert(jp, tentative+estimateDistance(jx, jy, gx, gy))
		return
	}

	if s.gScore[jp] > tentative {
		old := s.gScore[jp]
		s.cameFrom[jp] = node
		s.gScore[jp] = tentative
		s.open.changePriority(jp, s.open.priorityOf(jp)-old+tentative)
	}
}

// isOptimalTurn reports whether direction d may follow an arrival in
// direction from. The start node, with no arrival direction, may go
// anywhere. A diagonal arrival admits turns up to two eighth-turns
// away; a cardinal arrival only one.
func isOptimalTurn(d, from direction) bool {
	if from == dirNone || d == from {
		return true
	}
	if from.diagonal() {
		return d == from.rotate(-1) || d == from.rotate(-2) ||
			d == from.rotate(1) || d == from.rotate(2)
	}
	return d == from.rotate(-1) || d == from.rotate(1)
}

// hasForcedNeighbours reports whether a cell reached while traveling in
// direction d has a neighbour reachable no better than through this
// cell. A side neighbour is forced when the tile orthogonally behind it
// is blocked; the rotation offsets differ between cardinal and diagonal
// travel.
func (s *search) hasForcedNeighbours(x, y int, d direction) bool {
	ent := func(k int) bool {
		cx, cy := stepToward(x, y, d.rotate(k))
		return s.grid.enterable(cx, cy)
	}
	// a implies b
	impl := func(a, b bool) bool { return !a || b }

	if d.diagonal() {
		return !impl(ent(-2), ent(-3)) || !impl(ent(2), ent(3))
	}
	return !impl(ent(-1), ent(-2)) || !impl(ent(1), ent(2))
}

// jump follows direction d from the given node until it hits a jump
// point, returning its index, or -1 when the ray dies at a wall or the
// map edge. Straight runs are plain loops; a diagonal run additionally
// probes its two flanking cardinals at every step and, when a probe
// finds a jump point, the current diagonal cell itself becomes the jump
// point. Interior cells of a run are never enqueued; reconstruction
// regenerates them.
func (s *search) jump(d direction, from int) int {
	if !d.diagonal() {
		return s.jumpCardinal(d, from)
	}

	x, y := s.grid.coord(from)
	for {
		x, y = stepToward(x, y, d)
		if !s.grid.enterable(x, y) {
			return -1
		}
		node := s.grid.index(x, y)
		if node == s.goal || s.hasForcedNeighbours(x, y, d) {
			return node
		}
		if s.jumpCardinal(d.rotate(-1), node) >= 0 {
			return node
		}
		if s.jumpCardinal(d.rotate(1), node) >= 0 {
			return node
		}
	}
}

func (s *search) jumpCardinal(d direction, from int) int {
	x, y := s.grid.coord(from)
	for {
		x, y = stepToward(x, y, d)
		if !s.grid.enterable(x, y) {
			return -1
		}
		node := s.grid.index(x, y)
		if node == s.goal || s.hasForcedNeighbours(x, y, d) {
			return node
		}
	}
}
