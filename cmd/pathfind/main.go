// Command pathfind runs a single shortest-path query against an AIIDE
// octile map and renders the result.
//
// Usage:
//
//	go run ./cmd/pathfind -map maps/arena.map -start 1,11 -goal 30,40
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/udisondev/gridpath/internal/aiide"
	"github.com/udisondev/gridpath/internal/pathfind"
)

func main() {
	mapPath := flag.String("map", "", "path to an AIIDE .map file")
	startArg := flag.String("start", "0,0", "start cell as x,y")
	goalArg := flag.String("goal", "", "goal cell as x,y")
	flag.Parse()

	if *mapPath == "" || *goalArg == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*mapPath, *startArg, *goalArg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(mapPath, startArg, goalArg string) error {
	m, err := aiide.LoadMap(mapPath)
	if err != nil {
		return err
	}

	sx, sy, err := parseCell(startArg)
	if err != nil {
		return fmt.Errorf("bad -start: %w", err)
	}
	gx, gy, err := parseCell(goalArg)
	if err != nil {
		return fmt.Errorf("bad -goal: %w", err)
	}

	start := pathfind.ToIndex(m.Width, sx, sy)
	goal := pathfind.ToIndex(m.Width, gx, gy)

	path, err := pathfind.Compute(m.Cells, m.Width, m.Height, start, goal)
	if err != nil {
		return err
	}

	fmt.Printf("path length: %d\n", len(path))
	fmt.Printf("path cost:   %.4f\n", pathfind.PathCost(m.Width, start, path))

	// The path is goal-first; print it walking order.
	for i := len(path) - 1; i >= 0; i-- {
		x, y := pathfind.ToCoord(m.Width, path[i])
		fmt.Printf("(%d,%d)\n", x, y)
	}

	fmt.Println()
	render(os.Stdout, m, path)
	return nil
}

// render draws the map with the path overlaid: tiles on the path show
// their position in the returned sequence mod 10, free tiles '.',
// blocked tiles '#'.
func render(w *os.File, m *aiide.Map, path []int) {
	onPath := make(map[int]int, len(path))
	for i, node := range path {
		onPath[node] = i
	}

	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			node := pathfind.ToIndex(m.Width, x, y)
			if i, ok := onPath[node]; ok {
				b.WriteByte(byte('0' + i%10))
			} else if m.Cells[node] {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(w, b.String())
}

// parseCell parses "x,y" into coordinates.
func parseCell(arg string) (int, int, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want x,y, got %q", arg)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("parsing x %q: %w", parts[0], err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("parsing y %q: %w", parts[1], err)
	}
	return x, y, nil
}
