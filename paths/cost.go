package paths

import (
	"fmt"

	"github.com/katalvlaran/headway/orient"
)

// Counts returns how many moves and turns make up p.
// Returns ErrBrokenPath if two consecutive states are not one action apart.
func Counts(p []orient.State) (moves, turns int, err error) {
	for i := 1; i < len(p); i++ {
		a, ok := orient.Classify(p[i-1], p[i])
		if !ok {
			return 0, 0, fmt.Errorf("%w: %v -> %v at step %d", ErrBrokenPath, p[i-1], p[i], i)
		}
		if a == orient.Move {
			moves++
		} else {
			turns++
		}
	}
	return moves, turns, nil
}

// Cost returns c.Move×moves + c.Turn×turns for p.
func Cost(p []orient.State, c orient.Costs) (int64, error) {
	moves, turns, err := Counts(p)
	if err != nil {
		return 0, err
	}
	return c.Move*int64(moves) + c.Turn*int64(turns), nil
}

// Check verifies that every state of p stands on a cell accepted by w and
// that consecutive states are one action apart.
func Check(p []orient.State, w orient.Walker) error {
	for i, s := range p {
		if !w.Walkable(s.Cell) {
			return fmt.Errorf("%w: %v at step %d", ErrBlockedCell, s.Cell, i)
		}
	}
	_, _, err := Counts(p)
	return err
}
