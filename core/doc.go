// Package core provides the central Graph type: an adjacency-list store of
// vertices and weighted, optionally-directed edges, consumed by every search
// algorithm in wander.
//
// What
//
//   - Explicit vertex lifecycle: AddVertex fails on duplicates, AddEdge fails
//     on unknown endpoints (no implicit vertex creation).
//   - Undirected graphs maintain symmetric closure eagerly: every mutation
//     that touches edge (u,v) touches (v,u) in the same call.
//   - Neighbors(id) enumerates adjacent vertices in edge insertion order,
//     so traversal tie-breaking is reproducible for a given construction
//     sequence.
//   - Self-loops are permitted and stored once.
//   - Optional per-vertex payload of arbitrary type.
//
// Why
//
//	BFS, DFS, A* and Dijkstra all consume the same minimal read surface,
//	captured by the GraphReader interface: Neighbors and HasVertex. Anything
//	that implements GraphReader can be searched; Graph is the canonical
//	implementation.
//
// Concurrency
//
//	Graph holds no locks. Any number of goroutines may read (Neighbors,
//	HasVertex, EdgeWeight, ...) concurrently as long as no mutation
//	(Add*/Remove*) runs at the same time. Callers that mutate concurrently
//	must synchronize externally, e.g. with a sync.RWMutex around the graph.
//
// Errors
//
//	ErrDuplicateVertex - AddVertex with an existing ID.
//	ErrVertexNotFound  - RemoveVertex / AddEdge / RemoveEdge on a missing vertex.
//	ErrDuplicateEdge   - AddEdge where the edge already exists.
//	ErrEdgeNotFound    - RemoveEdge / EdgeWeight on a missing edge.
//	ErrBadWeight       - negative or NaN edge weight.
//	ErrEmptyVertexID   - empty string used as a vertex ID.
//
// Complexity (d = degree of the touched vertex)
//
//	AddVertex, HasVertex, HasEdge, EdgeWeight  O(1)
//	AddEdge, RemoveEdge                        O(d) worst case
//	Neighbors                                  O(d)
//	RemoveVertex                               O(d) undirected, O(V+E) directed
//	                                           (incoming edges have no reverse index)
package core
