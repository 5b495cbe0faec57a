// Package search finds minimal-cost routes for an agent that has a heading.
//
// Overview:
//
//   - The search space is the set of oriented states (cell, heading) of a
//     grid.Grid. From each state the agent may move one cell forward (cost 1)
//     or turn 90° left or right in place (cost 1000), see package orient.
//   - Search runs A* from (start, StartHeading) to any state on the goal cell.
//     The default heuristic, Manhattan distance × move cost, is admissible and
//     consistent, so the first pop of a state fixes its cost exactly as in
//     Dijkstra's algorithm.
//   - In ModeAllOptimal (default) every goal state reached at the minimal cost
//     is kept, and every equal-cost predecessor of every state is remembered,
//     so Result.Paths yields all optimal paths and Result.Cells their cells.
//
// When to use:
//
//   - Maze and warehouse routing where turning is far more expensive than
//     driving straight.
//   - Counting how many cells lie on at least one best route.
//
// Key features:
//
//   - Functional options: WithStartHeading, WithCosts, WithHeuristic,
//     WithHeuristicFunc, WithMode, WithMaxExpansions, WithContext,
//     WithLogger, WithOnFinalize, WithPrecheck.
//   - No per-entry path copies: paths are rebuilt from predecessor links by
//     package paths.
//   - "No path" is a normal Result (Found == false), not an error.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S ≤ 4 × walkable cells.
//   - Space: O(S) for costs, predecessor links and the lazy heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         nil grid.
//   - ErrOptionViolation: invalid heading, costs, mode, heuristic or cap.
//   - ErrExpansionLimit:  WithMaxExpansions exceeded.
//   - context errors:     cancellation via WithContext.
//
// Thread safety:
//
//   - A *grid.Grid is immutable and may be searched from many goroutines at
//     once. Each Search call owns its frontier, finalized set and maps.
//   - Custom HeuristicFunc and OnFinalize callbacks run on the calling
//     goroutine.
package search
