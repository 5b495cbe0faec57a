package paths

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/headway/grid"
	"github.com/katalvlaran/headway/orient"
)

// UnionOfCells projects every state of every path to its cell and returns
// the distinct cells.
func UnionOfCells(paths [][]orient.State) mapset.Set[grid.Cell] {
	cells := mapset.New[grid.Cell]()
	for _, p := range paths {
		for _, s := range p {
			cells.Put(s.Cell)
		}
	}
	return cells
}

// CellsOf returns the cells of every state reachable backwards from termini
// through preds. For a search predecessor DAG this equals
// UnionOfCells(Enumerate(termini, preds, 0)) without listing the paths.
//
// Complexity: O(V + E) over the visited part of the DAG.
func CellsOf(termini []orient.State, preds map[orient.State][]orient.State) mapset.Set[grid.Cell] {
	cells := mapset.New[grid.Cell]()
	seen := make(map[orient.State]bool, len(termini))
	queue := make([]orient.State, 0, len(termini))
	for _, t := range termini {
		if !seen[t] {
			seen[t] = true
			queue = append(queue, t)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		s := queue[qi]
		cells.Put(s.Cell)
		for _, p := range preds[s] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}
	return cells
}
