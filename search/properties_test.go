package search_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/headway/grid"
	"github.com/katalvlaran/headway/orient"
	"github.com/katalvlaran/headway/paths"
	"github.com/katalvlaran/headway/search"
)

const pathLimit = 5000

// randomGrid builds a w×h grid with roughly density blocked cells and distinct
// random start and goal cells.
func randomGrid(t *testing.T, r *rand.Rand, w, h int, density float64) *grid.Grid {
	t.Helper()
	rows := make([][]byte, h)
	for y := range rows {
		rows[y] = make([]byte, w)
		for x := range rows[y] {
			rows[y][x] = '.'
			if r.Float64() < density {
				rows[y][x] = '#'
			}
		}
	}
	sx, sy := r.Intn(w), r.Intn(h)
	ex, ey := sx, sy
	for ex == sx && ey == sy {
		ex, ey = r.Intn(w), r.Intn(h)
	}
	rows[sy][sx] = 'S'
	rows[ey][ex] = 'E'

	lines := make([]string, h)
	for y := range rows {
		lines[y] = string(rows[y])
	}
	g, err := grid.New(lines)
	require.NoError(t, err, strings.Join(lines, "\n"))
	return g
}

func sameCells(a, b mapset.Set[grid.Cell]) bool {
	if a.Size() != b.Size() {
		return false
	}
	same := true
	a.Each(func(c grid.Cell) {
		if !b.Has(c) {
			same = false
		}
	})
	return same
}

// TestRandomGridProperties checks, on seeded random grids, that:
//   - every enumerated path is legal and costs exactly the reported minimum;
//   - the union of enumerated paths equals Cells;
//   - repeated searches agree;
//   - A* and plain Dijkstra agree on cost and cells;
//   - blocking one more cell never lowers the cost.
func TestRandomGridProperties(t *testing.T) {
	r := rand.New(rand.NewSource(20241216))
	costs := orient.DefaultCosts()

	for i := 0; i < 60; i++ {
		g := randomGrid(t, r, 4+r.Intn(9), 3+r.Intn(7), 0.25)
		heading := orient.Headings()[r.Intn(4)]
		opt := search.WithStartHeading(heading)

		res, err := search.Search(g, opt)
		require.NoError(t, err)

		again, err := search.Search(g, opt)
		require.NoError(t, err)
		require.Equal(t, res.Found, again.Found)

		dijk, err := search.Search(g, opt, search.WithHeuristic(search.HeuristicZero))
		require.NoError(t, err)
		require.Equal(t, res.Found, dijk.Found)
		require.Equal(t, res.Found, g.Connected(g.Start(), g.Goal()))

		if res.Found {
			cost, _ := res.Cost()
			c2, _ := again.Cost()
			c3, _ := dijk.Cost()
			require.Equal(t, cost, c2)
			require.Equal(t, cost, c3)
			require.True(t, sameCells(res.Cells(), again.Cells()))
			require.True(t, sameCells(res.Cells(), dijk.Cells()))

			p, err := res.Path()
			require.NoError(t, err)
			require.NoError(t, paths.Check(p, g))
			pc, err := paths.Cost(p, costs)
			require.NoError(t, err)
			require.Equal(t, cost, pc)

			moves, turns, err := paths.Counts(p)
			require.NoError(t, err)
			require.Equal(t, cost, int64(moves)*costs.Move+int64(turns)*costs.Turn)
			require.GreaterOrEqual(t, moves, g.Start().Manhattan(g.Goal()))

			all, err := res.Paths(pathLimit)
			require.NoError(t, err)
			require.NotEmpty(t, all)
			for _, q := range all {
				require.NoError(t, paths.Check(q, g))
				qc, err := paths.Cost(q, costs)
				require.NoError(t, err)
				require.Equal(t, cost, qc)
			}
			if len(all) < pathLimit {
				require.True(t, sameCells(paths.UnionOfCells(all), res.Cells()))
			}
			for _, term := range res.Termini {
				require.Equal(t, g.Goal(), term.Cell)
			}
		}

		// Block one extra cell that is neither start nor goal.
		var free []grid.Cell
		for _, c := range g.WalkableCells() {
			if c != g.Start() && c != g.Goal() {
				free = append(free, c)
			}
		}
		if len(free) == 0 {
			continue
		}
		g2, err := g.WithBlocked(free[r.Intn(len(free))])
		require.NoError(t, err)
		res2, err := search.Search(g2, opt)
		require.NoError(t, err)
		if !res.Found {
			require.False(t, res2.Found)
			continue
		}
		if res2.Found {
			c1, _ := res.Cost()
			c2, _ := res2.Cost()
			require.GreaterOrEqual(t, c2, c1)
		}
	}
}
