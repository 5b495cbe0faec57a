// Package paths turns search output into paths and covered cells.
//
// The search engine does not carry a path on each frontier entry. It records
// predecessor links instead, and this package rebuilds paths from them:
//
//   - Reconstruct follows a single-predecessor map (one path per terminus).
//   - Enumerate walks a predecessor DAG that keeps every equal-cost parent,
//     yielding all optimal state sequences.
//   - UnionOfCells and CellsOf project states to the distinct grid cells
//     touched by any of those paths.
//   - Counts, Cost and Check validate a path against the action model.
package paths
