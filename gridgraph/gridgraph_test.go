// Package gridgraph_test verifies grid validation, connectivity, blocking,
// cost mapping, and the conversion into a searchable core.Graph.
package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmelnyk/wander/astar"
	"github.com/dmelnyk/wander/core"
	"github.com/dmelnyk/wander/gridgraph"
)

// uniform builds a w×h grid filled with value v.
func uniform(w, h, v int) [][]int {
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			rows[y][x] = v
		}
	}

	return rows
}

func TestNew_RejectsMalformedInput(t *testing.T) {
	_, err := gridgraph.New(nil, gridgraph.DefaultGridOptions())
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.New([][]int{{}}, gridgraph.DefaultGridOptions())
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.New([][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions())
	require.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

func TestNew_CopiesCells(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	gg, err := gridgraph.New(src, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	src[0][0] = 99
	assert.Equal(t, 1, gg.At(0, 0), "construction must deep-copy the input")
}

func TestInBoundsAndOpen(t *testing.T) {
	gg, err := gridgraph.New([][]int{{0, 1}, {0, 0}}, gridgraph.GridOptions{
		Conn:    gridgraph.Conn4,
		Blocked: func(v int) bool { return v == 1 },
	})
	require.NoError(t, err)

	assert.True(t, gg.InBounds(1, 1))
	assert.False(t, gg.InBounds(2, 0))
	assert.False(t, gg.InBounds(0, -1))

	assert.True(t, gg.Open(0, 0))
	assert.False(t, gg.Open(1, 0), "value 1 is blocked")
	assert.False(t, gg.Open(5, 5), "out of bounds is never open")
}

func TestToGraph_Conn4EdgeCount(t *testing.T) {
	gg, err := gridgraph.New(uniform(3, 3, 0), gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	g := gg.ToGraph()
	assert.Equal(t, 9, g.VertexCount())
	// A 3×3 4-connected lattice: 2 horizontal edges per row and 2 vertical
	// per column.
	assert.Equal(t, 12, g.EdgeCount())
	assert.True(t, g.HasEdge(gridgraph.VertexID(0, 0), gridgraph.VertexID(1, 0)))
	assert.False(t, g.HasEdge(gridgraph.VertexID(0, 0), gridgraph.VertexID(1, 1)), "no diagonals under Conn4")
}

func TestToGraph_Conn8AddsDiagonals(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.New(uniform(3, 3, 0), opts)
	require.NoError(t, err)

	g := gg.ToGraph()
	// 12 orthogonal edges plus 2 diagonals in each of the four unit squares.
	assert.Equal(t, 20, g.EdgeCount())
	assert.True(t, g.HasEdge(gridgraph.VertexID(0, 0), gridgraph.VertexID(1, 1)))
}

func TestToGraph_BlockedCellsExcluded(t *testing.T) {
	// A wall of 1s down the middle column splits the grid in two.
	grid := [][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	}
	gg, err := gridgraph.New(grid, gridgraph.GridOptions{
		Conn:    gridgraph.Conn4,
		Blocked: func(v int) bool { return v == 1 },
	})
	require.NoError(t, err)

	g := gg.ToGraph()
	assert.Equal(t, 6, g.VertexCount())
	assert.False(t, g.HasVertex(gridgraph.VertexID(1, 0)))

	// The two sides are disconnected.
	res, err := astar.Search(g, gridgraph.VertexID(0, 0), gridgraph.VertexID(2, 2), astar.Zero)
	require.NoError(t, err)
	assert.False(t, res.Found())
}

func TestToGraph_CellCostShapesWeights(t *testing.T) {
	// Entering a value-5 cell costs 5; edges between cheap cells cost 1.
	grid := [][]int{
		{1, 5},
		{1, 1},
	}
	gg, err := gridgraph.New(grid, gridgraph.GridOptions{
		Conn:     gridgraph.Conn4,
		CellCost: func(v int) float64 { return float64(v) },
	})
	require.NoError(t, err)

	g := gg.ToGraph()
	w, err := g.EdgeWeight(gridgraph.VertexID(0, 0), gridgraph.VertexID(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 5.0, w, "edge into the dear cell costs its entry price")

	w, err = g.EdgeWeight(gridgraph.VertexID(0, 0), gridgraph.VertexID(0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
}

func TestToGraph_PayloadIsCellValue(t *testing.T) {
	gg, err := gridgraph.New([][]int{{7, 8}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	g := gg.ToGraph()
	p, ok := g.Payload(gridgraph.VertexID(1, 0))
	require.True(t, ok)
	assert.Equal(t, 8, p)
}

func TestVertexID_Format(t *testing.T) {
	assert.Equal(t, "3,11", gridgraph.VertexID(3, 11))
}

// TestToGraph_ManhattanGuidedSearch routes around an obstacle on the grid
// the heuristics were designed for.
func TestToGraph_ManhattanGuidedSearch(t *testing.T) {
	// 5×5 open grid with an L-shaped wall forcing a detour.
	grid := uniform(5, 5, 0)
	grid[1][1], grid[1][2], grid[1][3], grid[2][3] = 1, 1, 1, 1
	gg, err := gridgraph.New(grid, gridgraph.GridOptions{
		Conn:    gridgraph.Conn4,
		Blocked: func(v int) bool { return v == 1 },
	})
	require.NoError(t, err)

	g := gg.ToGraph()
	res, err := astar.Search(g,
		gridgraph.VertexID(2, 0), gridgraph.VertexID(2, 2), astar.Manhattan)
	require.NoError(t, err)
	require.True(t, res.Found())

	// Straight-line distance is 2 but the wall forces a longer route.
	assert.Greater(t, res.Cost, 2.0)
	assert.Equal(t, gridgraph.VertexID(2, 0), res.Path[0])
	assert.Equal(t, gridgraph.VertexID(2, 2), res.Path[len(res.Path)-1])

	// Every step in the returned path is a real edge.
	for i := 1; i < len(res.Path); i++ {
		assert.True(t, g.HasEdge(res.Path[i-1], res.Path[i]),
			"path step %s → %s is not an edge", res.Path[i-1], res.Path[i])
	}
}

// Compile-time check that GridGraph output satisfies the search interface.
var _ core.GraphReader = (*core.Graph)(nil)
