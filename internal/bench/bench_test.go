package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/gridpath/internal/aiide"
)

func testMap(t *testing.T) *aiide.Map {
	t.Helper()
	// 5x5 corridor map: walls force a zigzag between the corners.
	rows := []string{
		"11111",
		"00001",
		"11111",
		"10000",
		"11111",
	}
	cells := make([]bool, 0, 25)
	for _, row := range rows {
		for _, ch := range row {
			cells = append(cells, ch == '1')
		}
	}
	return &aiide.Map{Width: 5, Height: 5, Cells: cells}
}

func scenario(sx, sy, gx, gy int, optimal float64) aiide.Scenario {
	return aiide.Scenario{
		MapName: "corridor.map", MapWidth: 5, MapHeight: 5,
		StartX: sx, StartY: sy, GoalX: gx, GoalY: gy,
		OptimalLength: optimal,
	}
}

func TestRunSolvesScenarios(t *testing.T) {
	m := testMap(t)
	scens := []aiide.Scenario{
		scenario(0, 0, 4, 4, 0),
		scenario(0, 0, 4, 0, 4),
		scenario(4, 4, 0, 0, 0),
	}

	results, sum, err := Run(context.Background(), m, scens, Options{Workers: 3, CheckBaseline: true})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 3, sum.Solved)
	assert.Equal(t, 0, sum.Unsolved)
	assert.Equal(t, 0, sum.Mismatches)

	// Results keep scenario order.
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.True(t, r.Solved)
		assert.True(t, r.BaselineOK)
		assert.Positive(t, r.PathLen)
		assert.Positive(t, r.Cost)
	}

	// The corridor forces 12 tiles each way between the corners.
	assert.Equal(t, 12, results[0].PathLen)
	assert.Equal(t, 12, results[2].PathLen)
}

func TestRunRecordsUnreachable(t *testing.T) {
	// Column x=2 fully blocked: right half unreachable from the left.
	cells := make([]bool, 25)
	for i := range cells {
		cells[i] = i%5 != 2
	}
	m := &aiide.Map{Width: 5, Height: 5, Cells: cells}

	results, sum, err := Run(context.Background(), m,
		[]aiide.Scenario{scenario(0, 0, 4, 4, 0)},
		Options{Workers: 2, CheckBaseline: true})
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Unsolved)
	assert.Equal(t, 0, sum.Mismatches)
	assert.False(t, results[0].Solved)
	assert.True(t, results[0].BaselineOK)
}

func TestRunRejectsOutOfBoundsScenario(t *testing.T) {
	m := testMap(t)

	_, _, err := Run(context.Background(), m,
		[]aiide.Scenario{scenario(0, 0, 9, 9, 0)},
		Options{Workers: 1, CheckBaseline: false})
	assert.Error(t, err)
}

func TestRunWithoutBaselineCheck(t *testing.T) {
	m := testMap(t)

	results, sum, err := Run(context.Background(), m,
		[]aiide.Scenario{scenario(0, 0, 4, 4, 0)},
		Options{Workers: 1, CheckBaseline: false})
	require.NoError(t, err)

	assert.Equal(t, 0, sum.Mismatches)
	assert.True(t, results[0].BaselineOK)
}

func TestRunCancelled(t *testing.T) {
	m := testMap(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scens := make([]aiide.Scenario, 64)
	for i := range scens {
		scens[i] = scenario(0, 0, 4, 4, 0)
	}

	_, _, err := Run(ctx, m, scens, Options{Workers: 1, CheckBaseline: false})
	assert.Error(t, err)
}
