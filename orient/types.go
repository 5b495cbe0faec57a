package orient

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/headway/grid"
)

// Sentinel errors for the orient package.
var (
	// ErrUnknownHeading is returned by ParseHeading for unrecognised input.
	ErrUnknownHeading = errors.New("orient: unknown heading")
	// ErrBadCosts indicates a cost model that would break heuristic consistency.
	ErrBadCosts = errors.New("orient: move and turn costs must be >= 1")
)

// State is the unit of search: a cell plus the heading the agent faces there.
// Two states are equal iff both fields match.
type State struct {
	Cell    grid.Cell
	Heading Heading
}

// String formats the state as "(x,y)^".
func (s State) String() string {
	return s.Cell.String() + s.Heading.Glyph()
}

// Action is one of the three transitions available from any state.
type Action uint8

const (
	// Move steps one cell forward, keeping the heading.
	Move Action = iota
	// TurnLeft rotates counter-clockwise in place.
	TurnLeft
	// TurnRight rotates clockwise in place.
	TurnRight
)

var actionNames = [...]string{"move", "turn-left", "turn-right"}

// String returns the action name.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Apply returns the state reached from s by a. It does not consult any grid.
func (a Action) Apply(s State) State {
	switch a {
	case TurnLeft:
		return State{Cell: s.Cell, Heading: s.Heading.TurnLeft()}
	case TurnRight:
		return State{Cell: s.Cell, Heading: s.Heading.TurnRight()}
	default:
		dx, dy := s.Heading.Delta()
		return State{Cell: s.Cell.Add(dx, dy), Heading: s.Heading}
	}
}

// Costs is the price of each action kind.
type Costs struct {
	Move int64 // cost of a forward step
	Turn int64 // cost of a 90° turn in either direction
}

// DefaultCosts returns Move=1, Turn=1000.
func DefaultCosts() Costs {
	return Costs{Move: 1, Turn: 1000}
}

// Validate rejects Move < 1 or Turn < 1. With these bounds a Manhattan
// distance scaled by Move never overestimates and is consistent.
func (c Costs) Validate() error {
	if c.Move < 1 || c.Turn < 1 {
		return fmt.Errorf("%w: got move=%d turn=%d", ErrBadCosts, c.Move, c.Turn)
	}
	return nil
}

// Of returns the cost of a.
func (c Costs) Of(a Action) int64 {
	if a == Move {
		return c.Move
	}
	return c.Turn
}

// Edge is a transition to To by Action at Cost.
type Edge struct {
	To     State
	Action Action
	Cost   int64
}
