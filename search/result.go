package search

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/headway/grid"
	"github.com/katalvlaran/headway/orient"
	"github.com/katalvlaran/headway/paths"
)

// Result holds the outcome of a search:
//   - Found: whether any goal state was reached.
//   - Termini: every goal state finalized at the minimal cost, in pop order.
//     Goal states differ only by heading; each is a distinct terminus.
//   - Stats: work counters.
//
// Paths are not stored inline; they are rebuilt from predecessor links on
// demand by Path, CanonicalPaths and Paths.
type Result struct {
	Found   bool
	Termini []orient.State
	Stats   Stats

	start orient.State
	cost  int64
	prev  map[orient.State]orient.State
	preds map[orient.State][]orient.State
}

func newResult(start orient.State, r *runner) *Result {
	res := &Result{start: start}
	if r == nil {
		return res
	}
	res.Stats = r.stats
	res.prev = r.prev
	res.preds = r.preds
	if r.found {
		res.Found = true
		res.cost = r.best
		res.Termini = r.termini
	}
	return res
}

// Cost returns the minimal total cost and true, or 0 and false when no goal
// state is reachable.
func (r *Result) Cost() (int64, bool) {
	return r.cost, r.Found
}

// Start returns the state the search started from.
func (r *Result) Start() orient.State { return r.start }

// Predecessors returns, for every finalized state except the start, the
// predecessor through which it was first finalized. The map is owned by r
// and must not be modified.
func (r *Result) Predecessors() map[orient.State]orient.State { return r.prev }

// PredecessorDAG returns, for every reached state, all predecessors that
// achieve its minimal known cost. The map is owned by r and must not be
// modified.
func (r *Result) PredecessorDAG() map[orient.State][]orient.State { return r.preds }

// Path returns one optimal path, to the first terminus, following
// Predecessors. It returns nil if nothing was found.
func (r *Result) Path() ([]orient.State, error) {
	if !r.Found {
		return nil, nil
	}
	return paths.Reconstruct(r.Termini[0], r.prev)
}

// CanonicalPaths returns one path per terminus following Predecessors.
func (r *Result) CanonicalPaths() ([][]orient.State, error) {
	out := make([][]orient.State, 0, len(r.Termini))
	for _, t := range r.Termini {
		p, err := paths.Reconstruct(t, r.prev)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Paths enumerates every optimal start→terminus state sequence, including
// those that tie on intermediate states. limit > 0 caps the count.
func (r *Result) Paths(limit int) ([][]orient.State, error) {
	if !r.Found {
		return nil, nil
	}
	return paths.Enumerate(r.Termini, r.preds, limit)
}

// Cells returns the distinct cells covered by any optimal path.
// It is empty when nothing was found. In ModeFirst only the ties discovered
// before the search stopped are covered.
func (r *Result) Cells() mapset.Set[grid.Cell] {
	if !r.Found {
		return mapset.New[grid.Cell]()
	}
	return paths.CellsOf(r.Termini, r.preds)
}
