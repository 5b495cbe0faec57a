// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/headway.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
//
// Every parse failure wraps ErrParse and every malformed start/goal layout
// wraps ErrConfig, so callers can branch with errors.Is on the category.
var (
	// ErrParse is the category of all malformed-input errors.
	ErrParse = errors.New("grid: parse error")
	// ErrConfig is the category of grids without exactly one start and one goal.
	ErrConfig = errors.New("grid: invalid configuration")

	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input grid must have at least one row and one column", ErrParse)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrParse)
	// ErrUnknownSymbol indicates a rune outside the configured alphabet.
	ErrUnknownSymbol = fmt.Errorf("%w: unknown symbol", ErrParse)

	// ErrMissingStart indicates that no start cell was found.
	ErrMissingStart = fmt.Errorf("%w: no start cell", ErrConfig)
	// ErrMissingGoal indicates that no goal cell was found.
	ErrMissingGoal = fmt.Errorf("%w: no goal cell", ErrConfig)
	// ErrDuplicateStart indicates more than one start cell.
	ErrDuplicateStart = fmt.Errorf("%w: more than one start cell", ErrConfig)
	// ErrDuplicateGoal indicates more than one goal cell.
	ErrDuplicateGoal = fmt.Errorf("%w: more than one goal cell", ErrConfig)
	// ErrBlockEndpoint is returned by WithBlocked when asked to wall off start or goal.
	ErrBlockEndpoint = fmt.Errorf("%w: start and goal cells cannot be blocked", ErrConfig)
	// ErrBadSymbols indicates that the alphabet does not consist of four distinct runes.
	ErrBadSymbols = fmt.Errorf("%w: symbols must be four distinct runes", ErrConfig)
)

// CellKind classifies a single grid cell.
type CellKind uint8

const (
	// Open is a free cell.
	Open CellKind = iota
	// Blocked is a wall. Out-of-bounds coordinates are reported as Blocked too.
	Blocked
	// Start marks the single start cell. It is traversable.
	Start
	// Goal marks the single goal cell. It is traversable.
	Goal
)

var kindNames = [...]string{"open", "blocked", "start", "goal"}

// String returns the lower-case kind name.
func (k CellKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("CellKind(%d)", uint8(k))
}

// Walkable reports whether an agent may stand on a cell of this kind.
func (k CellKind) Walkable() bool {
	return k == Open || k == Start || k == Goal
}

// Cell is an integer coordinate pair. X is the column, Y the row (0 at the top).
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns |dx|+|dy| between c and o.
func (c Cell) Manhattan(o Cell) int {
	dx, dy := c.X-o.X, c.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Symbols is the four-rune alphabet of the text format.
type Symbols struct {
	Blocked rune
	Open    rune
	Start   rune
	Goal    rune
}

// DefaultSymbols returns '#' blocked, '.' open, 'S' start and 'E' goal.
func DefaultSymbols() Symbols {
	return Symbols{Blocked: '#', Open: '.', Start: 'S', Goal: 'E'}
}

// kind maps r to its CellKind.
func (s Symbols) kind(r rune) (CellKind, bool) {
	switch r {
	case s.Open:
		return Open, true
	case s.Blocked:
		return Blocked, true
	case s.Start:
		return Start, true
	case s.Goal:
		return Goal, true
	}
	return 0, false
}

func (s Symbols) valid() bool {
	rs := [4]rune{s.Blocked, s.Open, s.Start, s.Goal}
	for i := 0; i < len(rs); i++ {
		for j := i + 1; j < len(rs); j++ {
			if rs[i] == rs[j] {
				return false
			}
		}
	}
	return true
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Symbols is the alphabet used by New and Parse.
	Symbols Symbols
}

// Option configures grid construction.
type Option func(*Options)

// DefaultOptions returns Options with DefaultSymbols.
func DefaultOptions() Options {
	return Options{Symbols: DefaultSymbols()}
}

// WithSymbols replaces the default alphabet.
func WithSymbols(s Symbols) Option {
	return func(o *Options) {
		o.Symbols = s
	}
}
