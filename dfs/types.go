package dfs

import (
	"context"
	"errors"

	"github.com/dmelnyk/wander/metrics"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Traverse or
	// FindPath.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Option configures optional behavior of DFS traversal.
// Use with Traverse(g, start, opts...) or FindPath(g, start, target, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity stays O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Target, if non-empty, stops Traverse as soon as that vertex is
	// visited. The partial visit order is the intended result.
	Target string

	// OnVisit, if non-nil, is invoked when a vertex is discovered
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order). Returning an error aborts traversal.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits exploration to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→neighbor
	// before descending. Return false to skip that neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// Metrics receives operation counts. Defaults to metrics.Nop.
	Metrics metrics.Collector
}

// DefaultOptions returns an Options struct with:
//   - background context
//   - no target, no hooks, no filtering
//   - no depth limit (MaxDepth = -1)
//   - discarded metrics
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		Metrics:  metrics.Nop,
	}
}

// WithContext returns an Option that sets the Context for traversal.
// Passing a nil context has no effect (Background is retained).
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

// WithOnVisit installs fn as a pre-order hook, called when a vertex is
// first discovered.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook, called after a vertex's
// descendants have been fully explored.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth. A limit of 0 means only the start
// vertex is visited; negative restores "no limit".
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips edges for which fn(curr, neighbor) == false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
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

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in discovery (pre-order) sequence.
	Order []string

	// Depth maps each visited vertex to its distance (#edges) from the
	// start along the discovery path.
	Depth map[string]int

	// Parent maps each visited vertex to the vertex it was discovered from.
	// The start vertex does not appear.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool
}
