package dfs

import (
	"fmt"

	"github.com/dmelnyk/wander/core"
)

// frame is one level of the simulated recursion: a vertex, its neighbor
// slice fetched once, and a cursor into it.
type frame struct {
	id    string
	depth int
	nbrs  []core.Neighbor
	next  int
}

// dfsWalker encapsulates state during one DFS call.
type dfsWalker struct {
	graph core.GraphReader
	opts  Options
	stack []frame
	res   *Result
	found bool // target reached, stop descending
}

// Traverse performs depth-first search on g from start. Neighbors are
// explored in the order the graph yields them (edge insertion order for
// core.Graph), which matches what the equivalent recursive formulation
// would visit. If WithTarget is set, traversal stops right after visiting
// the target; the partial order is the intended result.
//
// An unknown start vertex yields an empty Result and a nil error.
// Complexity: O(V + E) time, O(V) memory for the work-stack and maps.
func Traverse(g core.GraphReader, start string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(start) {
		return w.res, nil
	}

	return w.res, w.run(start)
}

// FindPath searches depth-first for any path from start to target and
// returns it, start..target inclusive. The result is the first path DFS
// discovers, not the shortest one.
//
// A nil path with a nil error means no path exists; callers must
// distinguish this from the one-element path returned when start == target.
// Complexity: O(V + E).
func FindPath(g core.GraphReader, start, target string, opts ...Option) ([]string, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(start) {
		return nil, nil
	}

	w.opts.Target = target
	if err = w.run(start); err != nil {
		return nil, err
	}
	if !w.found {
		return nil, nil
	}

	// The work-stack holds exactly the branch that reached the target:
	// it is the path.
	path := make([]string, len(w.stack))
	for i, f := range w.stack {
		path[i] = f.id
	}

	return path, nil
}

// newWalker validates inputs, folds options, and allocates working state.
func newWalker(g core.GraphReader, opts []Option) (*dfsWalker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &dfsWalker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:   []string{},
			Depth:   make(map[string]int),
			Parent:  make(map[string]string),
			Visited: make(map[string]bool),
		},
	}, nil
}

// run drives the explicit stack until exhaustion, target hit, hook error,
// or cancellation.
func (w *dfsWalker) run(start string) error {
	if err := w.push(start, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 && !w.found {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		descended, err := w.step()
		if err != nil {
			return err
		}
		if descended {
			continue
		}

		// Current frame exhausted: post-order hook, then backtrack.
		top := w.stack[len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err = w.opts.OnExit(top.id); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %q: %w", top.id, err)
			}
		}
		w.stack = w.stack[:len(w.stack)-1]
	}

	return nil
}

// step advances the top frame to its next admissible unvisited neighbor and
// descends into it. Reports whether a descent happened.
func (w *dfsWalker) step() (bool, error) {
	f := &w.stack[len(w.stack)-1]
	for f.next < len(f.nbrs) {
		nbr := f.nbrs[f.next]
		f.next++
		w.opts.Metrics.AddComparisons(1)

		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(f.id, nbr.ID) {
			continue
		}
		if w.res.Visited[nbr.ID] {
			continue
		}
		if w.opts.MaxDepth >= 0 && f.depth+1 > w.opts.MaxDepth {
			continue
		}

		w.res.Parent[nbr.ID] = f.id
		if err := w.push(nbr.ID, f.depth+1); err != nil {
			return false, err
		}

		return true, nil
	}

	return false, nil
}

// push visits id at the given depth: marks it, records order, fires the
// pre-order hook, checks the early-stop target, and opens a new frame.
func (w *dfsWalker) push(id string, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)
	w.opts.Metrics.AddOperations(1)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}
	if w.opts.Target != "" && id == w.opts.Target {
		w.found = true
	}

	w.stack = append(w.stack, frame{
		id:    id,
		depth: depth,
		nbrs:  w.graph.Neighbors(id),
	})

	return nil
}
