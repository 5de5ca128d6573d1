package pathfind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseTestGrid builds a passability bitmap from rows of '1' (passable)
// and '0' (blocked).
func parseTestGrid(t *testing.T, rows []string) ([]bool, int, int) {
	t.Helper()
	height := len(rows)
	width := len(rows[0])
	cells := make([]bool, 0, width*height)
	for _, row := range rows {
		require.Len(t, row, width)
		for _, ch := range row {
			cells = append(cells, ch == '1')
		}
	}
	return cells, width, height
}

// requireValidPath checks the structural invariants of a returned path:
// goal-first, goal exactly once, start excluded, every tile passable,
// every consecutive pair (including start to the last tile) a legal
// unit step.
func requireValidPath(t *testing.T, cells []bool, width, start, goal int, path []int) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, goal, path[0], "goal must be at index 0")

	goalCount := 0
	for _, node := range path {
		if node == goal {
			goalCount++
		}
		assert.NotEqual(t, start, node, "start tile must not appear")
		assert.True(t, cells[node], "path tile %d must be passable", node)
	}
	assert.Equal(t, 1, goalCount, "goal must appear exactly once")

	prev := start
	for i := len(path) - 1; i >= 0; i-- {
		px, py := ToCoord(width, prev)
		x, y := ToCoord(width, path[i])
		assert.LessOrEqual(t, absInt(x-px), 1, "step %d jumps in x", i)
		assert.LessOrEqual(t, absInt(y-py), 1, "step %d jumps in y", i)
		assert.NotEqual(t, prev, path[i], "step %d does not move", i)
		prev = path[i]
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestComputeStraightDiagonal(t *testing.T) {
	cells, w, h := parseTestGrid(t, []string{
		"11111",
		"11111",
		"11111",
		"11111",
		"11111",
	})

	path, err := Compute(cells, w, h, ToIndex(w, 0, 0), ToIndex(w, 4, 4))
	require.NoError(t, err)

	want := []int{
		ToIndex(w, 4, 4),
		ToIndex(w, 3, 3),
		ToIndex(w, 2, 2),
		ToIndex(w, 1, 1),
	}
	assert.Equal(t, want, path)
}

func TestComputeZigzag(t *testing.T) {
	cells, w, h := parseTestGrid(t, []string{
		"11111",
		"00001",
		"11111",
		"10000",
		"11111",
	})
	start := ToIndex(w, 0, 0)
	goal := ToIndex(w, 4, 4)

	path, err := Compute(cells, w, h, start, goal)
	require.NoError(t, err)

	assert.Len(t, path, 12, "the corridor admits exactly 12 tiles")
	requireValidPath(t, cells, w, start, goal, path)

	baseline, err := ComputeBaseline(cells, w, h, start, goal)
	require.NoError(t, err)
	assert.InDelta(t, PathCost(w, start, baseline), PathCost(w, start, path), 1e-9)
}

func TestComputeUnreachable(t *testing.T) {
	cells, w, h := parseTestGrid(t, []string{
		"11011",
		"11011",
		"11011",
		"11011",
		"11011",
	})

	path, err := Compute(cells, w, h, ToIndex(w, 0, 0), ToIndex(w, 4, 4))
	assert.ErrorIs(t, err, ErrNoPath)
	assert.Nil(t, path)
}

func TestComputeSameStartAndGoal(t *testing.T) {
	cells, w, h := parseTestGrid(t, []string{
		"111",
		"111",
		"111",
	})
	node := ToIndex(w, 1, 1)

	path, err := Compute(cells, w, h, node, node)
	require.NoError(t, err)
	assert.Empty(t, path)

	baseline, err := ComputeBaseline(cells, w, h, node, node)
	require.NoError(t, err)
	assert.Empty(t, baseline)
}

func TestComputeOneStepAdjacency(t *testing.T) {
	cells, w, h := parseTestGrid(t, []string{
		"11111",
		"11111",
		"11111",
		"11111",
		"11111",
	})

	path, err := Compute(cells, w, h, ToIndex(w, 2, 2), ToIndex(w, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{ToIndex(w, 2, 3)}, path)
}

func TestComputeForcedNeighbourTrigger(t *testing.T) {
	cells, w, h := parseTestGrid(t, []string{
		"111",
		"101",
		"111",
	})
	start := ToIndex(w, 0, 0)
	goal := ToIndex(w, 2, 2)

	// Traveling east from the start, (1,0) must be recognized as a jump
	// point: its southern neighbour is blocked, forcing (2,1).
	s := &search{grid: &grid{cells: cells, width: w, height: h}, goal: goal}
	assert.Equal(t, ToIndex(w, 1, 0), s.jump(dirEast, start))

	path, err := Compute(cells, w, h, start, goal)
	require.NoError(t, err)
	requireValidPath(t, cells, w, start, goal, path)

	// The blocked centre allows a diagonal slip past either corner, so
	// the optimum is one straight step, one diagonal, one straight.
	assert.InDelta(t, 2+math.Sqrt2, PathCost(w, start, path), 1e-9)

	baseline, err := ComputeBaseline(cells, w, h, start, goal)
	require.NoError(t, err)
	assert.InDelta(t, PathCost(w, start, baseline), PathCost(w, start, path), 1e-9)
}

func TestComputeInvalidArgs(t *testing.T) {
	cells, w, h := parseTestGrid(t, []string{
		"11",
		"11",
	})

	tests := []struct {
		name  string
		start int
		goal  int
	}{
		{"negative start", -1, 3},
		{"start past end", 4, 3},
		{"negative goal", 0, -2},
		{"goal past end", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := Compute(cells, w, h, tt.start, tt.goal)
			assert.ErrorIs(t, err, ErrInvalidArgs)
			assert.Nil(t, path)
		})
	}
}

func TestComputeFullyBlocked(t *testing.T) {
	cells, w, h := parseTestGrid(t, []string{
		"000",
		"000",
		"000",
	})

	path, err := Compute(cells, w, h, 0, ToIndex(w, 2, 2))
	assert.ErrorIs(t, err, ErrNoPath)
	assert.Nil(t, path)
}

func TestComputeDeterminism(t *testing.T) {
	cells, w, h := parseTestGrid(t, []string{
		"11111",
		"00001",
		"11111",
		"10000",
		"11111",
	})
	start := ToIndex(w, 0, 0)
	goal := ToIndex(w, 4, 4)

	first, err := Compute(cells, w, h, start, goal)
	require.NoError(t, err)

	for range 3 {
		again, err := Compute(cells, w, h, start, goal)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestHasForcedNeighbours(t *testing.T) {
	cells, w, h := parseTestGrid(t, []string{
		"111",
		"101",
		"111",
	})
	s := &search{grid: &grid{cells: cells, width: w, height: h}}

	// Traveling east through (1,0): the tile behind the southern side
	// neighbour is the blocked centre.
	assert.True(t, s.hasForcedNeighbours(1, 0, dirEast))

	// Traveling east through (1,2): same situation mirrored north.
	assert.True(t, s.hasForcedNeighbours(1, 2, dirEast))

	// On an open grid nothing is forced.
	open, ow, oh := parseTestGrid(t, []string{
		"11111",
		"11111",
		"11111",
		"11111",
		"11111",
	})
	so := &search{grid: &grid{cells: open, width: ow, height: oh}}
	for d := dirNorth; d <= dirNorthWest; d++ {
		assert.False(t, so.hasForcedNeighbours(2, 2, d), "direction %d", d)
	}
}

func TestComputeMatchesBaseline(t *testing.T) {
	cells, w, h := parseTestGrid(t, []string{
		"11111111",
		"10011011",
		"10111001",
		"11010111",
		"01110101",
		"11011011",
		"10111011",
		"11110111",
	})

	for start := range cells {
		if !cells[start] {
			continue
		}
		for goal := range cells {
			if !cells[goal] || goal == start {
				continue
			}

			jps, jpsErr := Compute(cells, w, h, start, goal)
			base, baseErr := ComputeBaseline(cells, w, h, start, goal)

			if baseErr != nil {
				assert.ErrorIs(t, jpsErr, ErrNoPath, "start=%d goal=%d", start, goal)
				continue
			}
			require.NoError(t, jpsErr, "start=%d goal=%d", start, goal)
			requireValidPath(t, cells, w, start, goal, jps)
			assert.InDelta(t,
				PathCost(w, start, base),
				PathCost(w, start, jps),
				1e-9,
				"start=%d goal=%d", start, goal)
		}
	}
}

func TestPathCost(t *testing.T) {
	// start (0,0), path goal-first: (2,2) <- (2,1) <- (1,0)
	// One straight step, one diagonal, one straight.
	w := 3
	path := []int{ToIndex(w, 2, 2), ToIndex(w, 2, 1), ToIndex(w, 1, 0)}

	cost := PathCost(w, ToIndex(w, 0, 0), path)
	assert.InDelta(t, 2+math.Sqrt2, cost, 1e-9)
}

func TestEstimateNeverOverestimates(t *testing.T) {
	tests := []struct {
		ax, ay, bx, by int
	}{
		{0, 0, 4, 4},
		{0, 0, 7, 2},
		{3, 9, 3, 1},
		{5, 5, 5, 5},
	}

	for _, tt := range tests {
		est := estimateDistance(tt.ax, tt.ay, tt.bx, tt.by)
		precise := preciseDistance(tt.ax, tt.ay, tt.bx, tt.by)
		assert.LessOrEqual(t, est, precise+1e-12)
	}
}
