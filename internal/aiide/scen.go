package aiide

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Scenario is one benchmark entry from a .scen file. Coordinates are
// cell coordinates on the named map; OptimalLength is the published
// octile-optimal path cost.
type Scenario struct {
	Bucket        int
	MapName       string
	MapWidth      int
	MapHeight     int
	StartX        int
	StartY        int
	GoalX         int
	GoalY         int
	OptimalLength float64
}

// ParseScenarios reads an AIIDE .scen file: an optional "version" line
// followed by whitespace-separated records of bucket, map name, map
// dimensions, start, goal and optimal length.
func ParseScenarios(r io.Reader) ([]Scenario, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []Scenario
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if line == 1 && strings.HasPrefix(text, "version") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 9 {
			return nil, fmt.Errorf("scenario line %d: got %d fields, want 9", line, len(fields))
		}

		var s Scenario
		var err error
		if s.Bucket, err = strconv.Atoi(fields[0]); err != nil {
			return nil, fmt.Errorf("scenario line %d bucket: %w", line, err)
		}
		s.MapName = fields[1]
		ints := []*int{&s.MapWidth, &s.MapHeight, &s.StartX, &s.StartY, &s.GoalX, &s.GoalY}
		for i, dst := range ints {
			if *dst, err = strconv.Atoi(fields[2+i]); err != nil {
				return nil, fmt.Errorf("scenario line %d field %d: %w", line, 2+i, err)
			}
		}
		if s.OptimalLength, err = strconv.ParseFloat(fields[8], 64); err != nil {
			return nil, fmt.Errorf("scenario line %d optimal length: %w", line, err)
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading scenarios: %w", err)
	}
	return out, nil
}

// LoadScenarios parses the scenario file at the given path.
func LoadScenarios(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenarios %s: %w", path, err)
	}
	defer f.Close()

	scens, err := ParseScenarios(f)
	if err != nil {
		return nil, fmt.Errorf("parsing scenarios %s: %w", path, err)
	}
	slog.Debug("scenarios loaded", "path", path, "count", len(scens))
	return scens, nil
}
