package orient

import "github.com/katalvlaran/headway/grid"

// Walker answers whether a cell may be entered. *grid.Grid implements it.
type Walker interface {
	Walkable(c grid.Cell) bool
}

// Graph generates the outgoing edges of oriented states on demand.
// It stores nothing per state and is safe for concurrent use as long as the
// Walker is (an immutable *grid.Grid is).
type Graph struct {
	w     Walker
	costs Costs
}

// NewGraph returns a Graph over w priced by c.
// c is not validated here; callers that rely on heuristic consistency
// should check c.Validate first.
func NewGraph(w Walker, c Costs) *Graph {
	return &Graph{w: w, costs: c}
}

// Costs returns the cost model of g.
func (g *Graph) Costs() Costs { return g.costs }

// Successors lists the edges leaving s: Move (only if the cell ahead is
// walkable), then TurnLeft and TurnRight, which are always present.
func (g *Graph) Successors(s State) []Edge {
	return g.AppendSuccessors(make([]Edge, 0, 3), s)
}

// AppendSuccessors appends the edges leaving s to dst and returns the
// extended slice, in the same order as Successors.
func (g *Graph) AppendSuccessors(dst []Edge, s State) []Edge {
	if ahead := Move.Apply(s); g.w.Walkable(ahead.Cell) {
		dst = append(dst, Edge{To: ahead, Action: Move, Cost: g.costs.Move})
	}
	dst = append(dst,
		Edge{To: TurnLeft.Apply(s), Action: TurnLeft, Cost: g.costs.Turn},
		Edge{To: TurnRight.Apply(s), Action: TurnRight, Cost: g.costs.Turn},
	)
	return dst
}

// Classify reports which single action leads from one state to another.
// ok is false if no action does (including from == to).
func Classify(from, to State) (a Action, ok bool) {
	for _, a = range [...]Action{Move, TurnLeft, TurnRight} {
		if a.Apply(from) == to {
			return a, true
		}
	}
	return 0, false
}
