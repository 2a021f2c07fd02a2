// Package wander is an in-memory graph search engine: build a weighted,
// optionally-directed graph and run uninformed (BFS, DFS) or informed (A*)
// searches over it.
//
// What you get:
//
//   - core/      - the Graph: adjacency-list storage, explicit vertex/edge
//     lifecycle, deterministic neighbor order
//   - pqueue/    - generic array-backed binary Min/Max heap (A*'s open set)
//   - bfs/       - breadth-first traversal and hop-count shortest paths
//   - dfs/       - depth-first traversal and path finding (iterative, no
//     recursion-depth limits)
//   - astar/     - A* with pluggable heuristics (Manhattan, Euclidean, Zero)
//   - dijkstra/  - single-source weighted shortest paths (the reference for
//     A* with the zero heuristic)
//   - gridgraph/ - 2D grids as graphs with coordinate vertex IDs, the
//     natural playground for spatial heuristics
//   - metrics/   - caller-provided counters so algorithm cores stay pure
//
// Design rules shared by every package:
//
//   - Structural misuse (missing vertex, nil graph, nil heuristic) returns a
//     package-prefixed sentinel error; "no path found" is a nil path, never
//     an error.
//   - Each algorithm takes functional Options: context cancellation, event
//     hooks (OnVisit, OnEnqueue, OnExpand, ...), limits, and filters. All
//     hooks default to no-ops and cost nothing when absent.
//   - Graphs are not locked internally: any number of searches may read one
//     graph concurrently, but mutation requires external synchronization.
//
// Quick ASCII example:
//
//	A──1──B
//	│     │
//	4     2
//	│     │
//	C──1──D
//
// A*(A→D) with the zero heuristic returns [A B D] at cost 3.
//
//	go get github.com/dmelnyk/wander
package wander
