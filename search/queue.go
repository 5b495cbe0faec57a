package search

import "github.com/katalvlaran/headway/orient"

// nodeItem is one frontier entry: a state, its path cost g, its priority
// f = g + h, and the state it was pushed from.
type nodeItem struct {
	s         orient.State
	g         int64
	f         int64
	parent    orient.State
	hasParent bool
}

// nodePQ is a min-heap of *nodeItem ordered by f ascending, then g
// descending so that among equal priorities the deeper entry pops first.
// It uses the lazy-decrease-key approach: an improved cost pushes a new
// entry and the outdated one is skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by priority, breaking ties toward larger g.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].g > pq[j].g
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
