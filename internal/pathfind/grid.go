package pathfind

// ToIndex converts cell coordinates to a linear node index for a grid
// of the given width.
func ToIndex(width, x, y int) int {
	return x + y*width
}

// ToCoord converts a linear node index back to cell coordinates for a
// grid of the given width.
func ToCoord(width, node int) (x, y int) {
	return node % width, node / width
}

// grid is the passability bitmap a single search borrows. It is never
// written to.
type grid struct {
	cells  []bool
	width  int
	height int
}

func (g *grid) index(x, y int) int {
	return x + y*g.width
}

func (g *grid) coord(node int) (x, y int) {
	return node % g.width, node / g.width
}

func (g *grid) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// enterable reports whether the cell is in bounds and passable.
func (g *grid) enterable(x, y int) bool {
	return g.contains(x, y) && g.cells[x+y*g.width]
}
