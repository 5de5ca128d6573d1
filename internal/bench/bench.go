// Package bench executes AIIDE scenario suites against the jump point
// search and aggregates the outcomes. Scenarios fan out over a bounded
// worker pool; each individual search stays single-threaded and owns
// its state, so workers never contend.
package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/gridpath/internal/aiide"
	"github.com/udisondev/gridpath/internal/pathfind"
)

// costEpsilon bounds the acceptable drift between two octile costs of
// the same optimum, accumulated over many √2 additions.
const costEpsilon = 1e-6

// Options controls a benchmark run.
type Options struct {
	Workers       int
	CheckBaseline bool
}

// Result is the outcome of one scenario.
type Result struct {
	Index      int
	Start      int
	Goal       int
	Solved     bool
	PathLen    int
	Cost       float64
	Duration   time.Duration
	BaselineOK bool
}

// Summary aggregates a full run.
type Summary struct {
	Total         int
	Solved        int
	Unsolved      int
	Mismatches    int
	TotalDuration time.Duration
}

// Run executes every scenario against the given map. Results are
// returned in scenario order regardless of worker scheduling. A
// scenario whose coordinates fall outside the map aborts the run.
func Run(ctx context.Context, m *aiide.Map, scens []aiide.Scenario, opts Options) ([]Result, Summary, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(scens))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, sc := range scens {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := runOne(m, i, sc, opts.CheckBaseline)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	var sum Summary
	sum.Total = len(results)
	for _, r := range results {
		if r.Solved {
			sum.Solved++
		} else {
			sum.Unsolved++
		}
		if !r.BaselineOK {
			sum.Mismatches++
		}
		sum.TotalDuration += r.Duration
	}
	return results, sum, nil
}

func runOne(m *aiide.Map, index int, sc aiide.Scenario, checkBaseline bool) (Result, error) {
	if sc.StartX < 0 || sc.StartX >= m.Width || sc.StartY < 0 || sc.StartY >= m.Height ||
		sc.GoalX < 0 || sc.GoalX >= m.Width || sc.GoalY < 0 || sc.GoalY >= m.Height {
		return Result{}, fmt.Errorf("scenario %d (%d,%d)->(%d,%d): %w",
			index, sc.StartX, sc.StartY, sc.GoalX, sc.GoalY, pathfind.ErrInvalidArgs)
	}

	start := pathfind.ToIndex(m.Width, sc.StartX, sc.StartY)
	goal := pathfind.ToIndex(m.Width, sc.GoalX, sc.GoalY)

	began := time.Now()
	path, err := pathfind.Compute(m.Cells, m.Width, m.Height, start, goal)
	elapsed := time.Since(began)

	r := Result{
		Index:      index,
		Start:      start,
		Goal:       goal,
		Duration:   elapsed,
		BaselineOK: true,
	}

	switch {
	case err == nil:
		r.Solved = true
		r.PathLen = len(path)
		r.Cost = pathfind.PathCost(m.Width, start, path)
	case errors.Is(err, pathfind.ErrNoPath):
		// recorded as unsolved
	default:
		return Result{}, fmt.Errorf("scenario %d (%d,%d)->(%d,%d): %w",
			index, sc.StartX, sc.StartY, sc.GoalX, sc.GoalY, err)
	}

	if checkBaseline {
		r.BaselineOK = agreesWithBaseline(m, start, goal, r)
	}
	return r, nil
}

// agreesWithBaseline reruns the scenario with the unpruned search and
// compares reachability and cost.
func agreesWithBaseline(m *aiide.Map, start, goal int, r Result) bool {
	base, err := pathfind.ComputeBaseline(m.Cells, m.Width, m.Height, start, goal)
	if err != nil {
		return !r.Solved
	}
	if !r.Solved {
		return false
	}
	return math.Abs(pathfind.PathCost(m.Width, start, base)-r.Cost) <= costEpsilon
}
