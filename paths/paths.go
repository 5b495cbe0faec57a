package paths

import (
	"fmt"

	"github.com/katalvlaran/headway/orient"
)

// Reconstruct walks prev from terminus back to the state with no predecessor
// and returns the chain in start→terminus order.
// Returns ErrCycle if a state is met twice.
//
// Complexity: O(L) time and memory for a path of L states.
func Reconstruct(terminus orient.State, prev map[orient.State]orient.State) ([]orient.State, error) {
	seen := make(map[orient.State]struct{})
	path := []orient.State{}
	for cur := terminus; ; {
		if _, dup := seen[cur]; dup {
			return nil, fmt.Errorf("%w: %v repeats", ErrCycle, cur)
		}
		seen[cur] = struct{}{}
		path = append(path, cur)
		p, ok := prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	reverse(path)

	return path, nil
}

// Enumerate lists every start→terminus state sequence in the predecessor DAG
// preds, for each terminus in order. A state without entries in preds is a
// root. If limit > 0, at most limit paths are returned.
// Returns ErrCycle if preds is not acyclic along some walk.
//
// The number of paths can grow exponentially with grid size; use CellsOf
// when only the covered cells are needed.
func Enumerate(termini []orient.State, preds map[orient.State][]orient.State, limit int) ([][]orient.State, error) {
	var out [][]orient.State
	full := func() bool { return limit > 0 && len(out) >= limit }

	// frame is one state on the current backward walk and the index of the
	// next predecessor to try.
	type frame struct {
		s    orient.State
		next int
	}

	for _, t := range termini {
		if full() {
			break
		}
		stack := []frame{{s: t}}
		onPath := map[orient.State]bool{t: true}

		for len(stack) > 0 && !full() {
			top := &stack[len(stack)-1]
			ps := preds[top.s]

			if len(ps) == 0 {
				p := make([]orient.State, len(stack))
				for i := range stack {
					p[len(stack)-1-i] = stack[i].s
				}
				out = append(out, p)
			}
			if top.next >= len(ps) {
				delete(onPath, top.s)
				stack = stack[:len(stack)-1]
				continue
			}

			next := ps[top.next]
			top.next++
			if onPath[next] {
				return nil, fmt.Errorf("%w: %v repeats", ErrCycle, next)
			}
			onPath[next] = true
			stack = append(stack, frame{s: next})
		}
	}

	return out, nil
}

func reverse(p []orient.State) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
