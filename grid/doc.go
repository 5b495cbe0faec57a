// Package grid models the immutable 2-D map searched by headway.
//
// What:
//
//   - Grid holds one CellKind per cell (Open, Blocked, Start, Goal) together
//     with the cached start and goal cells and the grid bounds.
//   - New and Parse build a Grid from text rows; row index is the line number
//     from the top, column index is the rune offset, both 0-based.
//   - Kind never fails: coordinates outside the grid are reported as Blocked.
//   - Regions and Connected give 4-connected reachability over walkable cells.
//
// Text format (default alphabet, see Symbols and WithSymbols):
//
//	#  blocked
//	.  open
//	S  start (exactly one)
//	E  goal  (exactly one)
//
// Complexity:
//
//   - New / Parse:       O(W×H) time and memory.
//   - Kind / InBounds:   O(1).
//   - Regions:           O(W×H), Memory: O(W×H).
//   - Connected:         O(W×H) worst case, stops at the target.
//
// Errors:
//
//   - ErrParse category: ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol.
//   - ErrConfig category: ErrMissingStart, ErrMissingGoal, ErrDuplicateStart,
//     ErrDuplicateGoal, ErrBlockEndpoint, ErrBadSymbols.
package grid
