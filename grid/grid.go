package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single input row accepted by Parse.
const maxLineBytes = 1 << 20

// Grid is an immutable rectangular map of cell kinds with exactly one start
// and one goal. It is never mutated after construction, so a single *Grid may
// be shared by any number of concurrent searches.
type Grid struct {
	width, height int
	kinds         []CellKind // row-major, see index
	start, goal   Cell
	walkable      int
}

// New builds a Grid from text rows, one rune per cell.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs, ErrUnknownSymbol for runes
// outside the alphabet, and one of the ErrConfig errors unless exactly one
// start and one goal are present.
// Complexity: O(W×H) time and memory.
func New(rows []string, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.Symbols.valid() {
		return nil, ErrBadSymbols
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	w := len([]rune(rows[0]))
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	h := len(rows)
	g := &Grid{
		width:  w,
		height: h,
		kinds:  make([]CellKind, w*h),
	}

	var starts, goals int
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(runes), w)
		}
		for x, r := range runes {
			k, ok := o.Symbols.kind(r)
			if !ok {
				return nil, fmt.Errorf("%w %q at row %d, column %d", ErrUnknownSymbol, r, y, x)
			}
			switch k {
			case Start:
				starts++
				g.start = Cell{X: x, Y: y}
			case Goal:
				goals++
				g.goal = Cell{X: x, Y: y}
			}
			if k.Walkable() {
				g.walkable++
			}
			g.kinds[g.index(x, y)] = k
		}
	}

	switch {
	case starts == 0:
		return nil, ErrMissingStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrDuplicateStart, starts)
	case goals == 0:
		return nil, ErrMissingGoal
	case goals > 1:
		return nil, fmt.Errorf("%w: found %d", ErrDuplicateGoal, goals)
	}

	return g, nil
}

// Parse reads a grid from r. Each line is a row; a trailing '\r' is dropped
// and blank lines before the first row and after the last one are ignored.
// A blank line between rows is a ragged row and fails with ErrNonRectangular.
func Parse(r io.Reader, opts ...Option) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var rows []string
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" && len(rows) == 0 {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return New(rows, opts...)
}

// MustParse is like Parse on a string but panics on error.
// It simplifies tests and examples with literal grids.
func MustParse(s string, opts ...Option) *Grid {
	g, err := Parse(strings.NewReader(s), opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Cell { return g.goal }

// WalkableCount returns the number of traversable cells (open, start, goal).
func (g *Grid) WalkableCount() int { return g.walkable }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Kind returns the kind of c. Coordinates outside the grid are Blocked.
// Complexity: O(1).
func (g *Grid) Kind(c Cell) CellKind {
	if !g.InBounds(c) {
		return Blocked
	}
	return g.kinds[g.index(c.X, c.Y)]
}

// Walkable reports whether c is in bounds and not Blocked.
func (g *Grid) Walkable(c Cell) bool {
	return g.Kind(c).Walkable()
}

// WalkableCells lists every traversable cell in row-major order.
func (g *Grid) WalkableCells() []Cell {
	out := make([]Cell, 0, g.walkable)
	for i, k := range g.kinds {
		if k.Walkable() {
			out = append(out, g.coordinate(i))
		}
	}
	return out
}

// WithBlocked returns a copy of g in which every listed cell is Blocked.
// Out-of-bounds cells are already blocked and are ignored.
// Returns ErrBlockEndpoint if the list contains the start or goal cell.
func (g *Grid) WithBlocked(cells ...Cell) (*Grid, error) {
	kinds := make([]CellKind, len(g.kinds))
	copy(kinds, g.kinds)
	ng := &Grid{
		width:    g.width,
		height:   g.height,
		kinds:    kinds,
		start:    g.start,
		goal:     g.goal,
		walkable: g.walkable,
	}
	for _, c := range cells {
		if c == g.start || c == g.goal {
			return nil, fmt.Errorf("%w: %v", ErrBlockEndpoint, c)
		}
		if !ng.InBounds(c) {
			continue
		}
		i := ng.index(c.X, c.Y)
		if ng.kinds[i] != Blocked {
			ng.kinds[i] = Blocked
			ng.walkable--
		}
	}
	return ng, nil
}

// index maps (x,y) to a row-major index: y*width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// coordinate converts a row-major index back to a Cell.
func (g *Grid) coordinate(i int) Cell {
	return Cell{X: i % g.width, Y: i / g.width}
}
