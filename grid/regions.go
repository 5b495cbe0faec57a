package grid

// neighborOffsets are the orthogonal steps N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Regions finds all 4-connected regions of walkable cells.
// Each region is a slice of cells in BFS order starting from its top-left
// most cell; regions are returned in row-major order of those cells.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]Cell {
	seen := make([]bool, len(g.kinds))
	var regions [][]Cell

	for i, k := range g.kinds {
		if !k.Walkable() || seen[i] {
			continue
		}
		seen[i] = true
		queue := []int{i}
		var region []Cell

		for qi := 0; qi < len(queue); qi++ {
			c := g.coordinate(queue[qi])
			region = append(region, c)
			for _, d := range neighborOffsets {
				n := c.Add(d[0], d[1])
				if !g.Walkable(n) {
					continue
				}
				ni := g.index(n.X, n.Y)
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, ni)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// Connected reports whether b can be reached from a by orthogonal steps over
// walkable cells. A non-walkable endpoint is never connected.
// The BFS stops as soon as b is dequeued.
//
// Time:   O(W·H) worst case.
// Memory: O(W·H).
func (g *Grid) Connected(a, b Cell) bool {
	if !g.Walkable(a) || !g.Walkable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, len(g.kinds))
	target := g.index(b.X, b.Y)
	start := g.index(a.X, a.Y)
	seen[start] = true
	queue := []int{start}

	for qi := 0; qi < len(queue); qi++ {
		c := g.coordinate(queue[qi])
		for _, d := range neighborOffsets {
			n := c.Add(d[0], d[1])
			if !g.Walkable(n) {
				continue
			}
			ni := g.index(n.X, n.Y)
			if ni == target {
				return true
			}
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, ni)
			}
		}
	}
	return false
}
