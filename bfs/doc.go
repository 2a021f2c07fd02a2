// Package bfs provides breadth-first search over a core.GraphReader,
// returning hop-count shortest-path distances, parent links, and visit order.
//
// What
//
//   - Traverse explores vertices in non-decreasing distance (edge count)
//     from a start vertex, with optional early stop at a target.
//   - ShortestPath reconstructs the fewest-edge path between two vertices
//     and reports the cumulative edge weight along it.
//   - Functional hooks fire at three stages: OnEnqueue, OnDequeue, OnVisit
//     (the last may abort with an error).
//   - Individual edges can be pruned via WithFilterNeighbor, exploration
//     capped via WithMaxDepth, the whole search cancelled via WithContext,
//     and counters routed to a metrics.Collector via WithMetrics.
//
// Frontier discipline
//
//	Vertices are marked visited when they are ENQUEUED, not when dequeued.
//	A vertex with several incoming edges (or a self-loop) therefore enters
//	the FIFO frontier exactly once, and Traverse terminates on any graph.
//
// Weighted graphs
//
//	ShortestPath minimizes edge count, not total weight. The weight it
//	returns is the sum along the BFS discovery path and equals the true
//	minimum only for uniform weights. When weights differ, use dijkstra
//	(exact) or astar (heuristic-guided) instead.
//
// Failure semantics
//
//	An unknown start vertex is not an error: Traverse returns an empty
//	Result and ShortestPath returns a nil path. "No path found" is likewise
//	a nil path with a nil error. Only structural misuse fails: ErrGraphNil,
//	ErrOptionViolation, or a wrapped OnVisit hook error.
//
// Determinism
//
//	core.Graph yields neighbors in edge insertion order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible for a
//	given construction sequence.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for frontier, visited set, depth/parent maps
package bfs
