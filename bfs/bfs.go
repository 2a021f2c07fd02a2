package bfs

import (
	"fmt"

	"github.com/dmelnyk/wander/core"
)

// queueItem pairs a vertex ID with its BFS depth and the cumulative edge
// weight accumulated along its discovery path.
type queueItem struct {
	id    string
	depth int
	dist  float64
}

// walker encapsulates mutable BFS state for one call.
type walker struct {
	graph   core.GraphReader
	opts    Options
	queue   []queueItem
	visited map[string]bool
	dist    map[string]float64
	res     *Result
}

// Traverse runs breadth-first search on g starting from start, applying any
// number of functional Options.
//
// Vertices are marked visited at enqueue time, not at dequeue, so a vertex
// reachable over several edges (or a self-loop) enters the frontier exactly
// once. If WithTarget is set, the traversal stops right after visiting the
// target; the partial order is the intended result.
//
// An unknown start vertex yields an empty Result and a nil error: asking for
// the reachable set of a vertex that is not there has an ordinary answer,
// the empty one. Structural misuse (nil graph, bad option) returns an error.
// Complexity: O(V + E).
func Traverse(g core.GraphReader, start string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(start) {
		return w.res, nil
	}

	w.enqueue(start, 0, 0, "")

	return w.res, w.loop()
}

// ShortestPath finds a path from start to target with the fewest edges,
// returning the path (start..target inclusive) and the cumulative edge
// weight along it.
//
// The returned path is shortest by HOP COUNT. The weight is the sum along
// the BFS discovery path: it is the minimum total weight only when all edge
// weights are equal. For globally optimal weighted paths use the dijkstra
// or astar package.
//
// A nil path with a nil error means "no path exists", including when start
// is unknown. start == target yields the one-element path [start] at cost 0.
// Complexity: O(V + E).
func ShortestPath(g core.GraphReader, start, target string, opts ...Option) ([]string, float64, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, 0, err
	}
	if !g.HasVertex(start) {
		return nil, 0, nil
	}

	w.opts.Target = target
	w.enqueue(start, 0, 0, "")
	if err = w.loop(); err != nil {
		return nil, 0, err
	}

	if _, reached := w.res.Depth[target]; !reached {
		return nil, 0, nil
	}

	return reconstruct(w.res.Parent, start, target), w.dist[target], nil
}

// newWalker validates inputs, folds options, and allocates working state.
func newWalker(g core.GraphReader, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker{
		graph:   g,
		opts:    o,
		visited: make(map[string]bool),
		dist:    make(map[string]float64),
		res: &Result{
			Order:  []string{},
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}, nil
}

// enqueue marks id visited at depth d, records parent and cumulative
// distance, fires OnEnqueue, and appends to the frontier.
func (w *walker) enqueue(id string, d int, dist float64, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.dist[id] = dist
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.opts.Metrics.AddOperations(1)
	w.queue = append(w.queue, queueItem{id: id, depth: d, dist: dist})
}

// loop processes the frontier until empty, early target stop, error, or
// cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.id, item.depth)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if w.opts.Target != "" && item.id == w.opts.Target {
			return nil
		}

		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen
// neighbor in the order the graph yields them (edge insertion order for
// core.Graph, which keeps tie-breaking reproducible).
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		w.opts.Metrics.AddComparisons(1)
		if !w.opts.FilterNeighbor(item.id, nbr.ID) {
			continue
		}
		if !w.visited[nbr.ID] {
			w.enqueue(nbr.ID, nextDepth, item.dist+nbr.Weight, item.id)
		}
	}
}

// reconstruct walks parent links backward from target to start and reverses.
func reconstruct(parent map[string]string, start, target string) []string {
	path := []string{target}
	for cur := target; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
