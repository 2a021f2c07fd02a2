package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmelnyk/wander/metrics"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Target, if non-empty, stops Traverse as soon as that vertex is
	// visited. The partial visit order up to and including Target is the
	// intended result, not an error.
	Target string

	// MaxDepth, if > 0, stops exploring beyond this depth (in edges from
	// the start). A value of 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// OnEnqueue is called when a vertex enters the frontier, before visiting.
	OnEnqueue func(id string, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(id string, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// Metrics receives operation counts. Defaults to metrics.Nop.
	Metrics metrics.Collector

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
// background context, no target, no depth limit, no filtering, no-op hooks,
// discarded metrics.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
		Metrics:        metrics.Nop,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget makes Traverse stop early once id has been visited.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error from
// this callback stops the search.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMetrics directs counter increments into c.
func WithMetrics(c metrics.Collector) Option {
	return func(o *Options) {
		if c != nil {
			o.Metrics = c
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: vertex ID → distance (in edges) from the start.
//   - Parent: vertex ID → predecessor in the BFS tree (absent for the start).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}
