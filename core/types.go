package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex was called with an existing ID.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateEdge indicates AddEdge was called for an existing edge.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a non-negative number")
)

// Neighbor pairs an adjacent vertex ID with the weight of the connecting edge.
type Neighbor struct {
	// ID is the adjacent vertex identifier.
	ID string

	// Weight is the cost of the edge leading to ID.
	Weight float64
}

// GraphReader is the minimal read surface every search algorithm depends on.
// Graph implements it; so can adapters over external topologies.
//
// Implementations must guarantee that Neighbors returns adjacent vertices in
// a stable order for an unchanged topology, and an empty slice (not an error)
// for unknown IDs.
type GraphReader interface {
	// Neighbors returns the vertices adjacent to id with their edge weights.
	Neighbors(id string) []Neighbor

	// HasVertex reports whether id exists.
	HasVertex(id string) bool
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected makes every edge one-way (true) or bidirectional (false).
// The flag is fixed for the lifetime of the Graph.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory adjacency-list graph.
//
// vertices maps vertex ID to its payload (nil when none was supplied).
// adjacency maps vertex ID to a map of neighbor ID → edge weight, giving
// O(1) HasEdge/EdgeWeight lookups. adjOrder mirrors adjacency with the
// insertion order of each vertex's edges, giving Neighbors a reproducible
// enumeration order.
//
// Invariants:
//   - adjacency and adjOrder keys are always a subset of vertices keys.
//   - In an undirected Graph, adjacency[u][v] exists iff adjacency[v][u]
//     exists, with equal weights (self-loops stored once).
type Graph struct {
	directed bool

	vertices  map[string]any
	adjacency map[string]map[string]float64
	adjOrder  map[string][]string

	edgeCount int
}

// NewGraph creates an empty Graph. By default the Graph is undirected;
// pass WithDirected(true) for one-way edges.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]any),
		adjacency: make(map[string]map[string]float64),
		adjOrder:  make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// validWeight reports whether w may be stored as an edge weight.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsNaN(w)
}

var _ GraphReader = (*Graph)(nil)
