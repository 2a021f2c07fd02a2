// Package gridgraph treats a 2D integer grid as a graph with coordinate
// vertex IDs, the natural input for the spatial A* heuristics.
//
// Each open cell (x,y) becomes a vertex with ID "x,y" (the encoding
// astar.Manhattan and astar.Euclidean parse), connected to its 4- or
// 8-neighborhood. Cell values drive which cells are blocked and what it
// costs to enter them.
package gridgraph

import (
	"errors"
	"fmt"

	"github.com/dmelnyk/wander/core"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity

	// Blocked reports whether a cell value is impassable. Blocked cells
	// get no vertex. Nil means no cell is blocked.
	Blocked func(value int) bool

	// CellCost maps a cell value to the cost of entering that cell.
	// Nil means every move costs 1, which keeps astar.Manhattan admissible
	// on Conn4 grids.
	CellCost func(value int) float64
}

// DefaultGridOptions returns GridOptions with Conn4 connectivity, no
// blocked cells, and unit move cost.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph is an immutable view of a 2D integer grid.
// Width and Height define dimensions; the cell values are deep-copied at
// construction so later mutation of the input cannot skew conversions.
type GridGraph struct {
	Width, Height int

	cells   [][]int
	opts    GridOptions
	offsets [][2]int
}

// New constructs a GridGraph from a non-empty rectangular 2D slice.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
// Complexity: O(W×H) time and memory.
func New(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &GridGraph{
		Width:   w,
		Height:  h,
		cells:   cells,
		opts:    opts,
		offsets: offsets,
	}, nil
}

// At returns the stored value of cell (x,y). Panics out of bounds, like a
// slice index.
func (gg *GridGraph) At(x, y int) int { return gg.cells[y][x] }

// InBounds reports whether (x,y) lies within the grid. O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Open reports whether (x,y) is in bounds and not blocked. O(1).
func (gg *GridGraph) Open(x, y int) bool {
	if !gg.InBounds(x, y) {
		return false
	}

	return gg.opts.Blocked == nil || !gg.opts.Blocked(gg.cells[y][x])
}

// VertexID formats the vertex identifier of cell (x,y): "x,y".
// astar.Manhattan and astar.Euclidean parse exactly this form.
func VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToGraph converts the grid into an undirected weighted core.Graph.
// Every open cell becomes a vertex (payload: its cell value); every open
// neighbor pair under the configured connectivity becomes an edge whose
// weight is the cost of entering the more expensive endpoint (unit cost by
// default, symmetric by construction).
// Complexity: O(W×H×d).
func (gg *GridGraph) ToGraph() *core.Graph {
	g := core.NewGraph()

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Open(x, y) {
				// Error impossible: IDs are unique by construction.
				_ = g.AddVertex(VertexID(x, y), gg.cells[y][x])
			}
		}
	}

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Open(x, y) {
				continue
			}
			for _, d := range gg.offsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Open(nx, ny) {
					continue
				}
				u, v := VertexID(x, y), VertexID(nx, ny)
				if g.HasEdge(u, v) {
					continue // mirror pair already added
				}
				_ = g.AddEdge(u, v, gg.moveCost(x, y, nx, ny))
			}
		}
	}

	return g
}

// moveCost prices the undirected edge between two open cells as the dearer
// of the two entry costs, so the edge weight is direction-independent.
func (gg *GridGraph) moveCost(x1, y1, x2, y2 int) float64 {
	if gg.opts.CellCost == nil {
		return 1
	}

	c1 := gg.opts.CellCost(gg.cells[y1][x1])
	c2 := gg.opts.CellCost(gg.cells[y2][x2])
	if c1 > c2 {
		return c1
	}

	return c2
}
