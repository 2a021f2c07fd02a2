// Package dfs provides depth-first search over a core.GraphReader,
// returning discovery order, parent links, and depth-first paths.
//
// What
//
//   - Traverse visits vertices in pre-order from a start vertex, with
//     optional early stop at a target.
//   - FindPath returns the first start→target path the traversal discovers
//     (any path, not the shortest), backtracking out of exhausted branches.
//   - Hooks: OnVisit (pre-order, may abort with an error) and OnExit
//     (post-order, after a vertex's descendants are exhausted).
//   - WithFilterNeighbor prunes edges, WithMaxDepth bounds exploration,
//     WithContext cancels, WithMetrics counts.
//
// Iterative by construction
//
//	The traversal runs on an explicit work-stack of (vertex, neighbor
//	cursor) frames rather than native recursion, so graph depth is bounded
//	by heap memory, not by goroutine stack growth. Visit order is identical
//	to the recursive formulation: neighbors are taken in the order the
//	graph yields them.
//
// Failure semantics
//
//	An unknown start vertex returns an empty Result (Traverse) or a nil
//	path (FindPath) with a nil error. "No path" is a nil path, never an
//	error; start == target yields the one-element path [start]. Structural
//	misuse fails with ErrGraphNil or a wrapped hook error.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the work-stack, visited set, and result maps
package dfs
