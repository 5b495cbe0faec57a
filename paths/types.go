package paths

import "errors"

// Sentinel errors for path collection.
var (
	// ErrCycle indicates a predecessor chain that revisits a state.
	// Search output never contains one; seeing it means a corrupted map.
	ErrCycle = errors.New("paths: cyclic predecessor chain")
	// ErrBrokenPath indicates two consecutive states not linked by one action.
	ErrBrokenPath = errors.New("paths: consecutive states are not one action apart")
	// ErrBlockedCell indicates a path entering a non-walkable cell.
	ErrBlockedCell = errors.New("paths: path visits a blocked cell")
)
