package grid

import (
	"sort"
	"testing"
)

// TestRegions_TwoIslands splits the walkable cells by a wall column.
//
// Grid:
//
//	S.#..
//	..#.E
//
// Expected: regions of sizes 4 and 4, start and goal not connected.
func TestRegions_TwoIslands(t *testing.T) {
	g := MustParse("S.#..\n..#.E")

	regions := g.Regions()
	if len(regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(regions))
	}
	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	if sizes[0] != 4 || sizes[1] != 4 {
		t.Errorf("region sizes = %v; want [4 4]", sizes)
	}
	if regions[0][0] != g.Start() {
		t.Errorf("first region starts at %v; want %v", regions[0][0], g.Start())
	}
	if g.Connected(g.Start(), g.Goal()) {
		t.Error("Connected(start, goal) = true; want false")
	}
}

// TestConnected_Paths checks connectivity through a winding corridor and the
// trivial and blocked-endpoint cases.
func TestConnected_Paths(t *testing.T) {
	g := MustParse("S#...\n.#.#.\n...#E")

	if !g.Connected(g.Start(), g.Goal()) {
		t.Error("Connected(start, goal) = false; want true")
	}
	if !g.Connected(g.Start(), g.Start()) {
		t.Error("a walkable cell must be connected to itself")
	}
	if g.Connected(g.Start(), Cell{X: 1, Y: 0}) {
		t.Error("blocked endpoint reported connected")
	}
	if len(g.Regions()) != 1 {
		t.Errorf("got %d regions; want 1", len(g.Regions()))
	}
}

// TestIndexCoordinate checks the row-major index round trip.
func TestIndexCoordinate(t *testing.T) {
	g := MustParse("S...\n...E\n....")
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if c := g.coordinate(g.index(x, y)); c != (Cell{X: x, Y: y}) {
				t.Errorf("coordinate(index(%d,%d)) = %v", x, y, c)
			}
		}
	}
}
