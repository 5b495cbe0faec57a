// Package orient defines the oriented state space searched by headway.
//
// A State is a (cell, heading) pair. From every state exactly three actions
// are considered:
//
//	Move       one step forward, heading unchanged  (default cost 1)
//	TurnLeft   rotate 90° counter-clockwise in place (default cost 1000)
//	TurnRight  rotate 90° clockwise in place         (default cost 1000)
//
// Move is dropped when the cell ahead is blocked or out of bounds; turns are
// always available. Heading turning is arithmetic on a clockwise enumeration,
// so TurnLeft and TurnRight are total, pure and inverse to each other.
//
// Graph has no per-state storage: successors are generated on demand from the
// underlying Walker (normally a *grid.Grid).
package orient
