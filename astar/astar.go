package astar

import (
	"github.com/dmelnyk/wander/core"
	"github.com/dmelnyk/wander/pqueue"
)

// entry is one open-set element: a vertex with the g- and f-scores it was
// pushed with. Stale entries (superseded by a cheaper rediscovery) stay in
// the heap and are skipped when popped.
type entry struct {
	id string
	g  float64 // best known cost from start at push time
	f  float64 // g + heuristic estimate to target
}

// searcher holds the per-call working sets of one A* execution.
type searcher struct {
	graph    core.GraphReader
	opts     Options
	h        Heuristic
	target   string
	open     *pqueue.Heap[entry]
	closed   map[string]bool
	gScore   map[string]float64
	cameFrom map[string]string
	expanded int
}

// Search computes a minimum-cost path from start to target on g, guided by
// heuristic h. With an admissible h the returned path cost is optimal; with
// the Zero heuristic the search degenerates to Dijkstra's algorithm.
//
// The open set is a pqueue.Heap ordered by f-score (ties broken by lower
// g-score, which keeps expansion order deterministic). Rediscovering an open
// vertex with a better cost pushes a duplicate entry rather than updating in
// place; the stale entry is recognized and skipped when popped. Closed
// vertices are never reopened, which is sound for consistent heuristics.
//
// A nil Result.Path means "no path": a normal outcome, returned when the
// open set exhausts, when start is unknown, or when the WithMaxExpansions
// budget runs out. Structural misuse (nil graph, nil heuristic) returns an
// error instead.
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Search(g core.GraphReader, start, target string, h Heuristic, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return &Result{}, nil
	}

	s := &searcher{
		graph:  g,
		opts:   o,
		h:      h,
		target: target,
		open: pqueue.New(func(a, b entry) bool {
			if a.f != b.f {
				return a.f < b.f
			}
			return a.g < b.g
		}),
		closed:   make(map[string]bool),
		gScore:   make(map[string]float64),
		cameFrom: make(map[string]string),
	}

	s.gScore[start] = 0
	s.open.Push(entry{id: start, g: 0, f: h(start, target)})

	return s.run(start)
}

// SearchMany runs an independent Search per target and returns target →
// Result. Working sets are not shared between runs: each target gets a
// fresh A* instance, so an unreachable target cannot poison another's
// scores. Options apply to every run.
func SearchMany(g core.GraphReader, start string, targets []string, h Heuristic, opts ...Option) (map[string]*Result, error) {
	out := make(map[string]*Result, len(targets))
	for _, target := range targets {
		res, err := Search(g, start, target, h, opts...)
		if err != nil {
			return nil, err
		}
		out[target] = res
	}

	return out, nil
}

// run drives the open set until the target is finalized, the set empties,
// the expansion budget runs out, or the context is cancelled.
func (s *searcher) run(start string) (*Result, error) {
	for !s.open.Empty() {
		select {
		case <-s.opts.Ctx.Done():
			return nil, s.opts.Ctx.Err()
		default:
		}

		cur, _ := s.open.Pop()
		s.opts.Metrics.AddOperations(1)

		// Skip stale entries: the vertex was finalized, or rediscovered
		// cheaper, after this entry was pushed.
		if s.closed[cur.id] || cur.g > s.gScore[cur.id] {
			continue
		}

		if cur.id == s.target {
			return &Result{
				Path:     s.reconstruct(start),
				Cost:     s.gScore[cur.id],
				Expanded: s.expanded,
			}, nil
		}

		s.closed[cur.id] = true
		s.expanded++
		s.opts.OnExpand(cur.id, cur.g)
		if s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions {
			break
		}

		s.relax(cur)
	}

	return &Result{Expanded: s.expanded}, nil
}

// relax attempts to improve the score of every neighbor of cur, pushing
// improved entries into the open set.
func (s *searcher) relax(cur entry) {
	for _, nbr := range s.graph.Neighbors(cur.id) {
		if s.closed[nbr.ID] {
			continue
		}

		tentative := s.gScore[cur.id] + nbr.Weight
		s.opts.Metrics.AddComparisons(1)
		if known, ok := s.gScore[nbr.ID]; ok && tentative >= known {
			continue
		}

		s.cameFrom[nbr.ID] = cur.id
		s.gScore[nbr.ID] = tentative
		f := tentative + s.h(nbr.ID, s.target)
		s.opts.OnDiscover(nbr.ID, tentative, f)
		s.open.Push(entry{id: nbr.ID, g: tentative, f: f})
	}
}

// reconstruct walks cameFrom backward from the target to start and reverses.
func (s *searcher) reconstruct(start string) []string {
	path := []string{s.target}
	for cur := s.target; cur != start; {
		cur = s.cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
