package search

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/headway/grid"
	"github.com/katalvlaran/headway/orient"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit indicates that MaxExpansions states were finalized
	// before the search could conclude.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// Mode selects when the search stops.
type Mode int

const (
	// ModeAllOptimal keeps draining the frontier after the first goal pop and
	// collects every goal state reached at the minimal cost. It stops at the
	// first popped priority strictly above that cost.
	ModeAllOptimal Mode = iota

	// ModeFirst stops at the first goal state popped.
	ModeFirst
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeAllOptimal:
		return "all-optimal"
	case ModeFirst:
		return "first"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Heuristic selects a built-in lower bound on the remaining cost.
type Heuristic int

const (
	// HeuristicManhattan estimates Costs.Move × |dx|+|dy| to the goal. It is
	// consistent for every cost model accepted by orient.Costs.Validate.
	HeuristicManhattan Heuristic = iota

	// HeuristicZero turns the search into plain Dijkstra.
	HeuristicZero
)

// HeuristicFunc estimates the remaining cost from a cell to the goal.
// It must be consistent (h(u) ≤ w(u,v) + h(v) for every edge, h(goal) = 0);
// otherwise ModeAllOptimal may stop early and miss optimal termini.
type HeuristicFunc func(from, goal grid.Cell) int64

// Options configures the behavior of Search.
//
// StartHeading  – heading of the agent on the start cell. Default orient.Right.
// Costs         – price of moves and turns. Default orient.DefaultCosts().
// Heuristic     – built-in heuristic, ignored when HeuristicFunc is set.
// HeuristicFunc – caller-supplied heuristic (see HeuristicFunc for the contract).
// Mode          – ModeAllOptimal (default) or ModeFirst.
// MaxExpansions – stop with ErrExpansionLimit after this many finalizations; 0 = no cap.
// Precheck      – skip the search when start and goal lie in different regions. Default true.
type Options struct {
	Ctx           context.Context
	StartHeading  orient.Heading
	Costs         orient.Costs
	Heuristic     Heuristic
	HeuristicFunc HeuristicFunc
	Mode          Mode
	MaxExpansions int
	Precheck      bool

	// Logger receives Debug entries on start and completion and a Warn entry
	// when the expansion cap is hit. Default discards everything.
	Logger logrus.FieldLogger

	// OnFinalize is called once per state when its cost becomes final.
	OnFinalize func(s orient.State, cost int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
// Invalid arguments are recorded and surface as ErrOptionViolation from Search.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - start heading Right
//   - move cost 1, turn cost 1000
//   - Manhattan heuristic
//   - ModeAllOptimal
//   - no expansion cap
//   - region pre-check enabled
//   - discard logger, no-op OnFinalize
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		StartHeading: orient.Right,
		Costs:        orient.DefaultCosts(),
		Heuristic:    HeuristicManhattan,
		Mode:         ModeAllOptimal,
		Precheck:     true,
		Logger:       discardLogger(),
		OnFinalize:   func(orient.State, int64) {},
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStartHeading sets the heading of the agent on the start cell.
func WithStartHeading(h orient.Heading) Option {
	return func(o *Options) {
		if !h.Valid() {
			o.err = fmt.Errorf("%w: start heading %v", ErrOptionViolation, h)
			return
		}
		o.StartHeading = h
	}
}

// WithCosts replaces the default move and turn costs.
func WithCosts(c orient.Costs) Option {
	return func(o *Options) {
		if err := c.Validate(); err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.Costs = c
	}
}

// WithHeuristic selects a built-in heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != HeuristicManhattan && h != HeuristicZero {
			o.err = fmt.Errorf("%w: heuristic %d", ErrOptionViolation, int(h))
			return
		}
		o.Heuristic = h
		o.HeuristicFunc = nil
	}
}

// WithHeuristicFunc installs a caller-supplied heuristic.
func WithHeuristicFunc(fn HeuristicFunc) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil heuristic func", ErrOptionViolation)
			return
		}
		o.HeuristicFunc = fn
	}
}

// WithMode selects ModeAllOptimal or ModeFirst.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != ModeAllOptimal && m != ModeFirst {
			o.err = fmt.Errorf("%w: mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithMaxExpansions caps the number of finalized states.
//
//	n > 0: abort with ErrExpansionLimit once n states are finalized
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithPrecheck toggles the region pre-check.
func WithPrecheck(on bool) Option {
	return func(o *Options) {
		o.Precheck = on
	}
}

// WithLogger routes search log entries to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnFinalize registers a callback run once per finalized state.
func WithOnFinalize(fn func(s orient.State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// Stats counts the work done by one search.
type Stats struct {
	Expanded int // states finalized
	Pushed   int // frontier insertions
	Stale    int // popped entries discarded because the state was already final
}
