// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.GraphReader with non-negative edge weights.
//
// Vertices are finalized in order of increasing distance from the source
// using a min-heap keyed by distance. Improved distances push duplicate
// heap entries ("lazy decrease-key"); stale entries are skipped when popped.
//
// Complexity:
//
//   - Time:  O((V + E) log V): each vertex extracted at most once, each
//     edge relaxation may push one entry.
//   - Space: O(V + E): distance/predecessor maps plus duplicate entries.
package dijkstra

import (
	"fmt"

	"github.com/dmelnyk/wander/core"
	"github.com/dmelnyk/wander/pqueue"
)

// node is one heap entry: a vertex with the distance it was pushed at.
type node struct {
	id   string
	dist float64
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	graph core.GraphReader
	opts  Options
	pq    *pqueue.Heap[node]
	res   *Result
	done  map[string]bool
}

// Dijkstra computes shortest distances (and predecessors) from source to
// every reachable vertex of g.
//
// Validation order: empty source (ErrEmptySource), nil graph (ErrGraphNil),
// missing source (ErrSourceNotFound). Negative weights surface as
// ErrNegativeWeight when the offending edge is relaxed. Unreachable
// vertices are simply absent from Result.Dist.
func Dijkstra(g core.GraphReader, source string, opts ...Option) (*Result, error) {
	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &runner{
		graph: g,
		opts:  o,
		pq:    pqueue.New(func(a, b node) bool { return a.dist < b.dist }),
		done:  make(map[string]bool),
		res: &Result{
			Source: source,
			Dist:   make(map[string]float64),
			Prev:   make(map[string]string),
		},
	}

	r.res.Dist[source] = 0
	r.pq.Push(node{id: source, dist: 0})
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// process pops the cheapest open vertex, finalizes it, and relaxes its
// outgoing edges, until the heap empties or the distance cap is passed.
func (r *runner) process() error {
	for !r.pq.Empty() {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		cur, _ := r.pq.Pop()
		r.opts.Metrics.AddOperations(1)
		if r.done[cur.id] {
			continue // stale lazy-decrease-key entry
		}
		if cur.dist > r.opts.MaxDistance {
			break // everything left is at least this far
		}
		r.done[cur.id] = true

		if err := r.relax(cur.id); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of u.
func (r *runner) relax(u string) error {
	base := r.res.Dist[u]
	for _, nbr := range r.graph.Neighbors(u) {
		if nbr.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, u, nbr.ID, nbr.Weight)
		}

		cand := base + nbr.Weight
		if cand > r.opts.MaxDistance {
			continue
		}
		r.opts.Metrics.AddComparisons(1)
		if known, ok := r.res.Dist[nbr.ID]; ok && cand >= known {
			continue
		}

		r.res.Dist[nbr.ID] = cand
		r.res.Prev[nbr.ID] = u
		r.pq.Push(node{id: nbr.ID, dist: cand})
	}

	return nil
}
