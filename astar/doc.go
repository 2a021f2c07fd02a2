// Package astar provides A* heuristic search over a core.GraphReader,
// computing minimum-cost paths guided by a pluggable estimate of the
// remaining distance.
//
// What
//
//   - Search runs one start→target A* query and returns the path, its total
//     cost, and the number of vertices expanded.
//   - SearchMany fans the same start out to several targets, one fresh
//     search per target.
//   - Three standard heuristics ship with the package: Zero (degenerates to
//     Dijkstra), Manhattan, and Euclidean, the latter two reading
//     comma-separated coordinate vertex IDs as produced by gridgraph.
//
// State machine per vertex
//
//	Unseen → Open (in the priority queue with provisional g/f scores)
//	       → Closed (cost finalized, never revisited).
//
//	A vertex may re-enter Open with an improved score while still Open: the
//	cheaper duplicate is pushed and the stale entry is skipped when popped
//	(lazy decrease-key). Closed vertices are never reopened; that is sound
//	for consistent heuristics, and both shipped distance heuristics are
//	consistent on grids with matching edge costs.
//
// Guarantees
//
//	With non-negative edge weights and an admissible heuristic (one that
//	never overestimates), the returned path cost is optimal. The engine
//	cannot check admissibility; supplying an inadmissible heuristic trades
//	optimality for speed silently.
//
// Failure semantics
//
//	"No path" is a Result with a nil Path and a nil error: returned when
//	the open set exhausts, when the start vertex is unknown, or when a
//	WithMaxExpansions budget stops the search. Only nil graphs and nil
//	heuristics are errors. There are no internal timeouts: on an unbounded
//	graph, bound latency with WithMaxExpansions or WithContext.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O((V + E) log V): heap pushes dominated by E rediscoveries
//   - Memory: O(V + E): score maps plus duplicate open-set entries
package astar
