package search

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/headway/grid"
	"github.com/katalvlaran/headway/orient"
)

// Search finds the minimal cost from (g.Start(), StartHeading) to any state on
// g.Goal() and collects every goal state reached at that cost.
//
// Returns:
//
//   - res: the outcome. If no goal state is reachable, res.Found is false,
//     res.Cost() reports absent and res.Paths is empty. This is not an error.
//   - err: ErrNilGrid, ErrOptionViolation for invalid options,
//     ErrExpansionLimit when WithMaxExpansions is exceeded, or the context
//     error on cancellation.
//
// Complexity:
//
//   - Time:  O(S log S) with S ≤ 4 × walkable cells oriented states.
//   - Space: O(S) for costs, predecessor links and the heap.
func Search(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	start := orient.State{Cell: g.Start(), Heading: cfg.StartHeading}
	log := cfg.Logger.WithFields(logrus.Fields{
		"start":   start.Cell.String(),
		"goal":    g.Goal().String(),
		"heading": cfg.StartHeading.String(),
		"mode":    cfg.Mode.String(),
	})

	if cfg.Precheck && !g.Connected(g.Start(), g.Goal()) {
		log.Debug("goal not in start region; skipping search")
		return newResult(start, nil), nil
	}

	S := 4 * g.WalkableCount()
	r := &runner{
		graph: orient.NewGraph(g, cfg.Costs),
		opts:  cfg,
		goal:  g.Goal(),
		h:     heuristicFor(cfg),
		dist:  make(map[orient.State]int64, S),
		prev:  make(map[orient.State]orient.State, S),
		preds: make(map[orient.State][]orient.State, S),
		final: make(map[orient.State]bool, S),
		pq:    make(nodePQ, 0, 64),
		buf:   make([]orient.Edge, 0, 3),
	}

	log.Debug("search started")
	r.init(start)
	if err := r.process(); err != nil {
		log.WithFields(r.fields()).WithError(err).Warn("search aborted")
		return nil, err
	}

	res := newResult(start, r)
	log.WithFields(r.fields()).Debug("search finished")

	return res, nil
}

// heuristicFor resolves the configured heuristic into a function.
func heuristicFor(o Options) HeuristicFunc {
	if o.HeuristicFunc != nil {
		return o.HeuristicFunc
	}
	if o.Heuristic == HeuristicZero {
		return func(grid.Cell, grid.Cell) int64 { return 0 }
	}
	move := o.Costs.Move
	return func(from, goal grid.Cell) int64 {
		return move * int64(from.Manhattan(goal))
	}
}

// runner holds the mutable state for a single search execution.
// Nothing here is shared between calls to Search.
type runner struct {
	graph *orient.Graph
	opts  Options
	goal  grid.Cell
	h     HeuristicFunc

	dist  map[orient.State]int64          // best known g per state
	prev  map[orient.State]orient.State   // predecessor recorded at finalization
	preds map[orient.State][]orient.State // every predecessor achieving dist
	final map[orient.State]bool           // finalized states
	pq    nodePQ
	buf   []orient.Edge

	stats   Stats
	found   bool
	best    int64
	termini []orient.State
}

// init seeds the frontier with the start state at cost zero.
func (r *runner) init(start orient.State) {
	r.dist[start] = 0
	heap.Init(&r.pq)
	r.push(&nodeItem{s: start, g: 0, f: r.h(start.Cell, r.goal)})
}

func (r *runner) push(it *nodeItem) {
	heap.Push(&r.pq, it)
	r.stats.Pushed++
}

// process is the main loop. It pops the lowest-priority entry, skips it if
// stale, finalizes it and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (no path, or every optimal terminus collected).
//   - A goal state is finalized in ModeFirst.
//   - A goal cost is known and the popped priority exceeds it.
func (r *runner) process() error {
	ctx := r.opts.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		if r.final[item.s] {
			r.stats.Stale++
			continue
		}
		// Priorities never decrease under a consistent heuristic, so nothing
		// left can reach the goal at the best cost.
		if r.found && item.f > r.best {
			break
		}
		if r.opts.MaxExpansions > 0 && r.stats.Expanded >= r.opts.MaxExpansions {
			return fmt.Errorf("%w: %d states finalized", ErrExpansionLimit, r.stats.Expanded)
		}

		r.final[item.s] = true
		r.stats.Expanded++
		if item.hasParent {
			r.prev[item.s] = item.parent
		}
		r.opts.OnFinalize(item.s, item.g)

		if item.s.Cell == r.goal {
			if !r.found {
				r.found = true
				r.best = item.g
			}
			if item.g == r.best {
				r.termini = append(r.termini, item.s)
			}
			if r.opts.Mode == ModeFirst {
				return nil
			}
			// Anything beyond a goal state costs more than reaching it.
			continue
		}

		r.relax(item.s, item.g)
	}

	return nil
}

// relax examines each edge leaving u, whose cost gu is final.
// A strictly cheaper cost to v resets its predecessor list and pushes a new
// frontier entry; an equal cost only adds u as another predecessor, which
// may happen after v itself was finalized when both share a priority.
func (r *runner) relax(u orient.State, gu int64) {
	r.buf = r.graph.AppendSuccessors(r.buf[:0], u)
	for _, e := range r.buf {
		v := e.To
		nd := gu + e.Cost
		old, seen := r.dist[v]

		switch {
		case !seen || nd < old:
			// First finalization wins; only an inconsistent heuristic gets here.
			if r.final[v] {
				continue
			}
			r.dist[v] = nd
			r.preds[v] = []orient.State{u}
			r.push(&nodeItem{
				s:         v,
				g:         nd,
				f:         nd + r.h(v.Cell, r.goal),
				parent:    u,
				hasParent: true,
			})
		case nd == old:
			r.preds[v] = append(r.preds[v], u)
		}
	}
}

// fields summarizes the run for log entries.
func (r *runner) fields() logrus.Fields {
	f := logrus.Fields{
		"expanded": r.stats.Expanded,
		"pushed":   r.stats.Pushed,
		"stale":    r.stats.Stale,
		"termini":  len(r.termini),
	}
	if r.found {
		f["cost"] = r.best
	}
	return f
}
