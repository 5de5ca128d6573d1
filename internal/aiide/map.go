// Package aiide parses the AIIDE/movingai benchmark formats: octile
// .map files and their companion .scen scenario lists.
package aiide

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Map is a parsed octile map. Cells holds passability in row-major
// order, indexed by x + y*Width. Only '.' and 'G' count as passable;
// trees, swamps, water and out-of-bounds glyphs are all blocked.
type Map struct {
	Width  int
	Height int
	Cells  []bool
}

// ParseMap reads a map in the AIIDE octile text format:
//
//	type octile
//	height <H>
//	width <W>
//	map
//	<H rows of W glyphs>
func ParseMap(r io.Reader) (*Map, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var typ string
	if err := scanField(sc, "type", &typ); err != nil {
		return nil, err
	}
	if typ != "octile" {
		return nil, fmt.Errorf("unsupported map type %q", typ)
	}

	var height, width int
	if err := scanIntField(sc, "height", &height); err != nil {
		return nil, err
	}
	if err := scanIntField(sc, "width", &width); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bad map dimensions %dx%d", width, height)
	}

	if !sc.Scan() {
		return nil, fmt.Errorf("missing map marker: %w", scanErr(sc))
	}
	if marker := strings.TrimSpace(sc.Text()); marker != "map" {
		return nil, fmt.Errorf("expected map marker, got %q", marker)
	}

	m := &Map{
		Width:  width,
		Height: height,
		Cells:  make([]bool, 0, width*height),
	}
	for y := 0; y < height; y++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("map row %d: %w", y, scanErr(sc))
		}
		row := strings.TrimRight(sc.Text(), "\r")
		if len(row) != width {
			return nil, fmt.Errorf("map row %d: got %d glyphs, want %d", y, len(row), width)
		}
		for _, glyph := range []byte(row) {
			m.Cells = append(m.Cells, glyph == '.' || glyph == 'G')
		}
	}

	return m, nil
}

// LoadMap parses the map file at the given path.
func LoadMap(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map %s: %w", path, err)
	}
	defer f.Close()

	m, err := ParseMap(f)
	if err != nil {
		return nil, fmt.Errorf("parsing map %s: %w", path, err)
	}
	slog.Debug("map loaded", "path", path, "width", m.Width, "height", m.Height)
	return m, nil
}

func scanField(sc *bufio.Scanner, name string, out *string) error {
	if !sc.Scan() {
		return fmt.Errorf("missing %s header: %w", name, scanErr(sc))
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 || fields[0] != name {
		return fmt.Errorf("expected %q header, got %q", name, sc.Text())
	}
	*out = fields[1]
	return nil
}

func scanIntField(sc *bufio.Scanner, name string, out *int) error {
	var raw string
	if err := scanField(sc, name, &raw); err != nil {
		return err
	}
	if _, err := fmt.Sscanf(raw, "%d", out); err != nil {
		return fmt.Errorf("parsing %s %q: %w", name, raw, err)
	}
	return nil
}

// scanErr distinguishes a read failure from simple end of input.
func scanErr(sc *bufio.Scanner) error {
	if err := sc.Err(); err != nil {
		return err
	}
	return io.ErrUnexpectedEOF
}
